package media

// View is what the image partial needs to render one resource.
type View struct {
	URL     string
	Alt     string
	State   string // pending, loaded or errored
	Loaded  bool
	Errored bool
}

// View returns the render data for url. A nil tracker reports pending,
// leaving the browser to resolve the image.
func (t *Tracker) View(url, alt string) View {
	st := Pending
	if t != nil {
		st = t.State(url)
	}
	if url == "" {
		st = Errored
	}
	return View{
		URL:     url,
		Alt:     alt,
		State:   st.String(),
		Loaded:  st == Loaded,
		Errored: st == Errored,
	}
}
