package home

import (
	"fmt"
	"html/template"

	"github.com/dalemusser/studiosite/internal/app/store/content"
	"github.com/dalemusser/studiosite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/studiosite/internal/app/system/media"
	"github.com/dalemusser/studiosite/internal/app/system/motion"
	"github.com/dalemusser/studiosite/internal/domain/models"
)

// featuredPerColumn is how many work items each parallax column shows.
const featuredPerColumn = 3

type lineVM struct {
	Text   string
	Reveal motion.Reveal
}

type featuredVM struct {
	Item   models.WorkItem
	Image  media.View
	Reveal motion.Reveal
}

type serviceVM struct {
	Number   string
	Category string
	Reveal   motion.Reveal
}

type pointVM struct {
	Number string
	Title  string
	Desc   string
	Link   string
	Reveal motion.Reveal
}

type homeVM struct {
	HeroLines []lineVM
	VideoURL  string
	Poster    string
	Intro     template.HTML
	Pitch     string
	CTA       string

	LeftColumn     []featuredVM
	RightColumn    []featuredVM
	LeftParallax   motion.Parallax
	RightParallax  motion.Parallax
	IntroReveal    motion.Reveal
	Services       []serviceVM
	WhyUs          []pointVM
	Clients        []string
	ClientsMarquee []string
	CTAReveal      motion.Reveal
}

func buildHome(c *content.Catalog, tracker *media.Tracker) homeVM {
	hero := c.Hero()
	vm := homeVM{
		VideoURL:      hero.VideoURL,
		Poster:        hero.Poster,
		Intro:         htmlsanitize.Markdown(hero.Intro),
		Pitch:         hero.Pitch,
		CTA:           hero.CTA,
		LeftParallax:  motion.Parallax{From: 0, To: -100},
		RightParallax: motion.Parallax{From: 100, To: -50},
		IntroReveal:   motion.Up(0.2),
		CTAReveal:     motion.Up(0),
	}

	for i, line := range hero.Lines {
		vm.HeroLines = append(vm.HeroLines, lineVM{
			Text:   line,
			Reveal: motion.Stagger(motion.Curtain(0.2), i, 0.15),
		})
	}

	left, right := motion.Columns(c.Work(), featuredPerColumn)
	vm.LeftColumn = featured(left, tracker, true)
	vm.RightColumn = featured(right, tracker, false)

	for i, s := range c.Services() {
		vm.Services = append(vm.Services, serviceVM{
			Number:   fmt.Sprintf("%02d", i+1),
			Category: s.Category,
			Reveal:   motion.Stagger(motion.Up(0), i, 0.1),
		})
	}

	for i, p := range c.WhyUs() {
		vm.WhyUs = append(vm.WhyUs, pointVM{
			Number: fmt.Sprintf("%02d", i+1),
			Title:  p.Title,
			Desc:   p.Desc,
			Link:   p.Link,
			Reveal: motion.Stagger(motion.Up(0), i, 0.1),
		})
	}

	vm.Clients = c.Clients()
	vm.ClientsMarquee = motion.Marquee(vm.Clients)
	return vm
}

func featured(items []models.WorkItem, tracker *media.Tracker, fromLeft bool) []featuredVM {
	out := make([]featuredVM, 0, len(items))
	for i, it := range items {
		out = append(out, featuredVM{
			Item:   it,
			Image:  tracker.View(it.Image, it.Title),
			Reveal: motion.Stagger(motion.Slide(0, fromLeft), i, 0.1),
		})
	}
	return out
}
