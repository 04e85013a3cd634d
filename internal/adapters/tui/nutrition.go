package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/vitalcoach/vital-cli/internal/catalog"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

// filterState backs the fuzzy recipe filter in the nutrition view.
type filterState struct {
	active bool
	input  textinput.Model
}

func newFilterState() filterState {
	ti := textinput.New()
	ti.Placeholder = "filter recipes"
	ti.CharLimit = 40
	ti.Width = 30
	return filterState{input: ti}
}

// visibleRecipes applies the fuzzy filter to today's meals. An empty
// query shows everything in plan order.
func (m Model) visibleRecipes() []domain.Recipe {
	meals := catalog.NutritionPlan().Meals
	query := m.filter.input.Value()
	if query == "" {
		return meals
	}
	names := make([]string, len(meals))
	for i, r := range meals {
		names[i] = r.Name
	}
	matches := fuzzy.Find(query, names)
	filtered := make([]domain.Recipe, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, meals[match.Index])
	}
	return filtered
}

// updateNutrition handles keys in the nutrition view.
func (m Model) updateNutrition(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.router.NutritionSub() == domain.NutritionRecipeDetail {
		switch msg.String() {
		case "esc", "b":
			m.router.SetNutritionSub(domain.NutritionOverview)
		}
		return m, nil
	}

	if m.filter.active {
		switch msg.String() {
		case "esc":
			m.filter.active = false
			m.filter.input.Blur()
			m.filter.input.Reset()
			m.recipeCursor = 0
			return m, nil
		case "enter":
			m.filter.active = false
			m.filter.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter.input, cmd = m.filter.input.Update(msg)
		m.recipeCursor = 0
		return m, cmd
	}

	recipes := m.visibleRecipes()
	switch msg.String() {
	case "esc", "b":
		return m.goBack()
	case "/":
		m.filter.active = true
		m.filter.input.Focus()
		return m, m.filter.input.Cursor.BlinkCmd()
	case "up", "k":
		if m.recipeCursor > 0 {
			m.recipeCursor--
		}
	case "down", "j":
		if m.recipeCursor < len(recipes)-1 {
			m.recipeCursor++
		}
	case "enter":
		if len(recipes) > 0 {
			m.router.SetNutritionSub(domain.NutritionRecipeDetail)
		}
	}
	return m, nil
}

func (m Model) viewNutrition() string {
	if m.router.NutritionSub() == domain.NutritionRecipeDetail {
		return m.viewRecipeDetail()
	}

	help := m.helpStyle()
	accent := m.accentStyle()
	value := m.valueStyle()
	plan := catalog.NutritionPlan()

	var sections []string
	sections = append(sections, m.titleLine(domain.GetViewTitle(domain.ViewNutrition)))
	sections = append(sections, value.Render(fmt.Sprintf("Calories %d / %d (%d%%)",
		plan.TotalCalories, plan.TargetCalories, plan.CaloriePercent())))
	sections = append(sections, m.progress.ViewAs(float64(plan.CaloriePercent())/100))
	sections = append(sections, help.Render(fmt.Sprintf("Protein %dg/%dg (%d%%)   Carbs %dg/%dg (%d%%)   Fat %dg/%dg (%d%%)",
		plan.ProteinG, plan.TargetProteinG, plan.ProteinPercent(),
		plan.CarbsG, plan.TargetCarbsG, plan.CarbsPercent(),
		plan.FatG, plan.TargetFatG, plan.FatPercent())))
	sections = append(sections, "")

	if m.filter.active || m.filter.input.Value() != "" {
		sections = append(sections, help.Render("Filter: ")+m.filter.input.View())
		sections = append(sections, "")
	}

	recipes := m.visibleRecipes()
	if len(recipes) == 0 {
		sections = append(sections, help.Render("No recipes match."))
	}
	for i, r := range recipes {
		line := fmt.Sprintf("%-10s %-28s %4d kcal  %2dg protein  %2d min",
			domain.GetMealTypeLabel(r.Type), r.Name, r.Calories, r.ProteinG, r.PrepMinutes)
		if i == m.recipeCursor {
			sections = append(sections, accent.Render("▸ "+line))
		} else {
			sections = append(sections, help.Render("  "+line))
		}
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("↑/↓ select  [enter] recipe  [/] filter  [esc] dashboard"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewRecipeDetail() string {
	recipes := m.visibleRecipes()
	if m.recipeCursor >= len(recipes) {
		return ""
	}
	r := recipes[m.recipeCursor]

	help := m.helpStyle()
	accent := m.accentStyle()
	value := m.valueStyle()

	var sections []string
	sections = append(sections, m.titleLine(r.Name))
	sections = append(sections, help.Render(fmt.Sprintf("%s · %d min · %d serving(s)",
		domain.GetMealTypeLabel(r.Type), r.PrepMinutes, r.Servings)))
	sections = append(sections, value.Render(fmt.Sprintf("%d kcal   %dg protein   %dg carbs   %dg fat",
		r.Calories, r.ProteinG, r.CarbsG, r.FatG)))
	sections = append(sections, "")

	sections = append(sections, accent.Render("Ingredients"))
	for _, ing := range r.Ingredients {
		sections = append(sections, help.Render("  • "+ing))
	}
	sections = append(sections, "")

	sections = append(sections, accent.Render("Instructions"))
	for i, step := range r.Instructions {
		sections = append(sections, help.Render(fmt.Sprintf("  %d. %s", i+1, step)))
	}

	if r.Insight != "" {
		sections = append(sections, "")
		sections = append(sections, value.Render(r.Insight))
	}

	sections = append(sections, "")
	sections = append(sections, help.Render("[esc] back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
