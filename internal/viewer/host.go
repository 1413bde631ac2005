package viewer

// Host is the presentation layer the viewer drives while it is open
type Host interface {
	SuppressScroll()
	RestoreScroll()
	FocusSearch()
}

// NopHost ignores every presentation request
type NopHost struct{}

func (NopHost) SuppressScroll() {}
func (NopHost) RestoreScroll()  {}
func (NopHost) FocusSearch()    {}
