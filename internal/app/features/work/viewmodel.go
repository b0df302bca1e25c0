// internal/app/features/work/viewmodel.go
package work

import (
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/motion"
	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/dalemusser/studiosite/internal/domain/models"
)

// skeletonCards is how many placeholder cards show while loading.
const skeletonCards = 4

// revealStep is the per-card stagger in seconds.
const revealStep = 0.1

type choiceVM struct {
	Label  string
	Value  string
	Active bool
}

type cardVM struct {
	Item   models.WorkItem
	Image  media.View
	Reveal motion.Reveal
}

// gridVM is everything the work_grid fragment renders.
type gridVM struct {
	Filter    string
	Label     string
	Loading   bool
	Counter   string
	Choices   []choiceVM
	Cards     []cardVM
	Skeletons []int
	Empty     bool
}

func buildGrid(st workfilter.State, tracker *media.Tracker) gridVM {
	vm := gridVM{
		Filter:  string(st.Filter),
		Label:   label(st.Filter),
		Loading: st.Loading,
		Counter: motion.Counter(len(st.Items), st.Loading),
	}

	for _, c := range workfilter.Choices() {
		vm.Choices = append(vm.Choices, choiceVM{
			Label:  c.Label,
			Value:  string(c.Value),
			Active: c.Value == st.Filter,
		})
	}

	if st.Loading {
		vm.Skeletons = make([]int, skeletonCards)
		return vm
	}

	if len(st.Items) == 0 {
		vm.Empty = true
		return vm
	}

	vm.Cards = make([]cardVM, 0, len(st.Items))
	for i, it := range st.Items {
		vm.Cards = append(vm.Cards, cardVM{
			Item:   it,
			Image:  tracker.View(it.Image, it.Title),
			Reveal: motion.Stagger(motion.Up(0), i, revealStep),
		})
	}
	return vm
}

// label returns the display label for f, or its raw value when f is not a
// known option.
func label(f workfilter.Filter) string {
	for _, c := range workfilter.Choices() {
		if c.Value == f {
			return c.Label
		}
	}
	return string(f)
}
