package playerstats

type footerModel struct{}

func newFooterModel() footerModel {
	return footerModel{}
}

func (f footerModel) view(width int) string {
	hints := " q quit  ? help  1-0 preset  ←/→ prev/next  r refresh"
	return footerStyle.Width(width).Render(hints)
}
