package topics

// Renderer turns a topic's raw content into what is printed. ext is the
// topic file's extension, dot included.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (PlainRenderer) Render(content, _ string) string {
	return content
}
