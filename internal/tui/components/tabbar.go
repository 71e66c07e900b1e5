package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// AllTab is the label of the unfiltered tab.
const AllTab = "All"

// TabBar shows the "All" tab followed by one tab per category.
type TabBar struct {
	categories []string
	active     int
	colors     config.CategoriesConfig
}

// NewTabBar creates a tab bar with only the "All" tab.
func NewTabBar(colors config.CategoriesConfig) *TabBar {
	return &TabBar{colors: colors}
}

// SetCategories replaces the category tabs and activates "All".
func (t *TabBar) SetCategories(categories []string) {
	t.categories = categories
	t.active = 0
}

// Len returns the number of tabs including "All".
func (t *TabBar) Len() int {
	return len(t.categories) + 1
}

// Active returns the active tab index. 0 is "All".
func (t *TabBar) Active() int {
	return t.active
}

// Filter returns the category of the active tab, or "" for "All".
func (t *TabBar) Filter() string {
	if t.active == 0 {
		return ""
	}
	return t.categories[t.active-1]
}

// Select activates the tab at index i. Out of range indexes are ignored.
func (t *TabBar) Select(i int) bool {
	if i < 0 || i >= t.Len() {
		return false
	}
	t.active = i
	return true
}

// SelectCategory activates the tab for category, or "All" for "".
func (t *TabBar) SelectCategory(category string) bool {
	if category == "" {
		t.active = 0
		return true
	}
	for i, c := range t.categories {
		if c == category {
			t.active = i + 1
			return true
		}
	}
	return false
}

// Next activates the next tab, wrapping around.
func (t *TabBar) Next() {
	t.active = (t.active + 1) % t.Len()
}

// Prev activates the previous tab, wrapping around.
func (t *TabBar) Prev() {
	t.active = (t.active - 1 + t.Len()) % t.Len()
}

// Render draws the tabs on one line and returns a region per tab label
// relative to the bar's origin. Tabs past width are not drawn.
func (t *TabBar) Render(width int) (string, []Region) {
	var (
		parts   []string
		regions []Region
		x       int
	)
	for i := 0; i < t.Len(); i++ {
		label, category := AllTab, ""
		if i > 0 {
			category = t.categories[i-1]
			label = category
		}

		var s string
		if i == t.active {
			style := styles.ActiveTabStyle
			if category != "" {
				style = style.Foreground(lipgloss.Color(t.colors.Color(category)))
			}
			s = style.Render(label)
		} else {
			s = styles.TabStyle.Render(label)
		}

		w := lipgloss.Width(s)
		if width > 0 && x+w > width {
			break
		}
		parts = append(parts, s)
		regions = append(regions, Region{
			Rect:     Rect{X: x, Y: 0, W: w, H: 1},
			Action:   ActionTab,
			Priority: PriorityTab,
			Tab:      category,
		})
		x += w
	}
	return strings.Join(parts, ""), regions
}
