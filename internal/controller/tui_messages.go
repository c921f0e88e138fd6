package controller

// resultItem is one row of the result pager.
type resultItem struct {
	path     string
	strategy string
	lines    string
	net      string
	status   string
}

func (r resultItem) FilterValue() string {
	return r.path
}
