package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

func TestRenderHome_SeedMenu(t *testing.T) {
	dishes := domain.DefaultMenu()
	v := RenderHome(dishes, domain.ComputeStats(dishes))

	require.Equal(t, "Christoffel's Digital Menu", v.Title)
	require.Equal(t, "Welcome, Chef!", v.Subtitle)
	require.Equal(t, 6, v.TotalItems)
	require.Equal(t, "$11.17", v.AveragePriceLabel)
	require.Len(t, v.Dishes, 6)
	require.Equal(t, "Spicy Arancini ($9.50)", v.Dishes[0].Title())
	require.Equal(t, ScreenFilterMenu, v.FilterAction.Target)
	require.Equal(t, ScreenHome, v.Screen())
}

func TestRenderHome_Empty(t *testing.T) {
	v := RenderHome(nil, domain.ComputeStats(nil))
	require.Zero(t, v.TotalItems)
	require.Equal(t, "$0.00", v.AveragePriceLabel)
	require.Empty(t, v.Dishes)
	require.Equal(t, "The menu is currently empty!", v.EmptyText)
}

func TestRenderManage_CourseOptions(t *testing.T) {
	form := NewManageForm()
	form.Course = domain.CourseDessert
	v := RenderManage(domain.DefaultMenu(), domain.ComputeStats(domain.DefaultMenu()), form)

	require.Len(t, v.Courses, len(domain.Courses))
	for _, opt := range v.Courses {
		require.Equal(t, opt.Course == domain.CourseDessert, opt.Selected, opt.Label)
	}
	require.Equal(t, 6, v.TotalItems)
	require.Equal(t, "Remove Existing Dishes (6)", v.RemoveHeading)
}

func TestRenderManage_EmptyRemovalList(t *testing.T) {
	v := RenderManage(nil, domain.ComputeStats(nil), NewManageForm())
	require.Empty(t, v.Dishes)
	require.Equal(t, "No dishes to remove.", v.EmptyText)
	require.Equal(t, "Remove Existing Dishes (0)", v.RemoveHeading)
}

func TestNewManageForm_DefaultsToStarter(t *testing.T) {
	form := NewManageForm()
	require.Equal(t, domain.CourseStarter, form.Course)
	require.Empty(t, form.Name)
	require.Empty(t, form.Price)
}

func TestRenderFilter_EmptyMatch(t *testing.T) {
	v := RenderFilter(nil, domain.CourseBeverage)
	require.Equal(t, "Guest View Filter", v.Title)
	require.Equal(t, "Filter dishes by category", v.Subtitle)
	require.Equal(t, "No dishes found for this course.", v.EmptyText)
	require.Equal(t, "All Dishes", v.Options[0].Label)
	require.False(t, v.Options[0].Selected)

	all := RenderFilter(nil, domain.AnyCourse)
	require.True(t, all.Options[0].Selected)
	require.Equal(t, "No dishes found for this course.", all.EmptyText)
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "$5.00", FormatPrice(5))
	require.Equal(t, "$12.25", FormatPrice(12.25))
	require.Equal(t, "$0.10", FormatPrice(0.1))
}
