package nav

// ScrollThreshold is the scroll offset, in px, past which the bar gets its shadow.
const ScrollThreshold = 4

// Link is a navigation anchor.
type Link struct {
	Href  string
	Label string
}

// Links are the in-page sections, in order.
var Links = []Link{
	{Href: "#services", Label: "Services"},
	{Href: "#why", Label: "Why Us"},
	{Href: "#process", Label: "Process"},
	{Href: "#faqs", Label: "FAQs"},
	{Href: "#contact", Label: "Contact"},
}

// Menu is the navbar state: mobile drawer and scroll shadow.
type Menu struct {
	Open     bool
	Scrolled bool
}

// Parse restores the drawer state from a query value ("?menu=open").
func Parse(raw string) Menu {
	return Menu{Open: raw == "open"}
}

// Toggle flips the drawer.
func (m *Menu) Toggle() {
	m.Open = !m.Open
}

// Close shuts the drawer, as following a link does.
func (m *Menu) Close() {
	m.Open = false
}

// Scroll records the page offset.
func (m *Menu) Scroll(y float64) {
	m.Scrolled = y > ScrollThreshold
}

// ToggleQuery is the query value a drawer toggle link should carry.
func (m Menu) ToggleQuery() string {
	if m.Open {
		return ""
	}
	return "open"
}
