package approuter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/screentest"
)

func TestPopReturnsToPreviousScreen(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()
	detail := screentest.Bind(f.tk, &Detail{})
	settings := screentest.Bind(f.tk, &Settings{})
	nav.Push(detail, false, nil)
	nav.Push(settings, false, nil)

	popped := f.router.Pop(detail, false, nil)

	assert.Equal(t, []approuter.Screen{detail, settings}, popped)
	assert.Equal(t, []approuter.Screen{home}, nav.Screens())
	assert.Nil(t, detail.Stack())
}

func TestPopRefusesFirstOrLoneScreen(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()

	assert.Nil(t, f.router.Pop(home, false, nil))
	assert.Contains(t, f.messages[len(f.messages)-1], "only one screen")

	nav.Push(screentest.Bind(f.tk, &Detail{}), false, nil)
	assert.Nil(t, f.router.Pop(home, false, nil))
	assert.Contains(t, f.messages[len(f.messages)-1], "first on the stack")

	loose := f.tk.View("loose")
	assert.Nil(t, f.router.Pop(loose, false, nil))
}

func TestCloseChoosesPopOrDismiss(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()
	detail := screentest.Bind(f.tk, &Detail{})
	nav.Push(detail, false, nil)

	assert.True(t, f.router.Close(detail, false, nil))
	assert.Equal(t, []approuter.Screen{home}, nav.Screens())

	modal := screentest.Bind(f.tk, &Settings{})
	home.Present(modal, false, nil)
	closed := false
	assert.True(t, f.router.Close(modal, false, func() { closed = true }))
	assert.Nil(t, home.PresentedScreen())
	assert.True(t, closed)

	assert.False(t, f.router.Close(home, false, nil))
}

func TestPopFromTop(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()
	detail := screentest.Bind(f.tk, &Detail{})
	nav.Push(detail, false, nil)

	assert.Same(t, detail, f.router.PopFromTop(false, nil))
	assert.Nil(t, f.router.PopFromTop(false, nil))

	f.window.SetRoot(f.tk.View("bare"))
	assert.Nil(t, f.router.PopFromTop(false, nil))
}

func TestFindAndSelectTabs(t *testing.T) {
	tk := screentest.New()
	home := screentest.Bind(tk, &Home{})
	settings := screentest.Bind(tk, &Settings{})
	detail := screentest.Bind(tk, &Detail{})
	nav := tk.Navigation(home, detail)
	tabs := tk.TabBar(nav, settings)

	found, ok := approuter.FindInTabs[*Home](tabs)
	require.True(t, ok)
	assert.Same(t, home, found)

	_, ok = approuter.FindInTabs[*Detail](tabs)
	assert.False(t, ok)

	require.True(t, approuter.SelectTab[*Settings](tabs))
	assert.Same(t, settings, tabs.SelectedScreen())

	require.True(t, approuter.SelectTab[*Home](tabs))
	assert.Same(t, nav, tabs.SelectedScreen())

	assert.False(t, approuter.SelectTab[*screentest.TabBar](tabs))
}

func TestFindInStackAndPopToType(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()
	detail := screentest.Bind(f.tk, &Detail{})
	nav.Push(detail, false, nil)
	nav.Push(screentest.Bind(f.tk, &Settings{}), false, nil)

	found, ok := approuter.FindInStack[*Detail](nav)
	require.True(t, ok)
	assert.Same(t, detail, found)

	popped := approuter.PopToType[*Detail](nav, false, nil)
	assert.Len(t, popped, 1)
	assert.Same(t, detail, nav.TopScreen())

	assert.Nil(t, approuter.PopToType[*Settings](nav, false, nil))
	assert.Equal(t, []approuter.Screen{home, detail}, nav.Screens())
}

func TestPushOntoSkipsMembers(t *testing.T) {
	tk := screentest.New()
	home := tk.View("home")
	nav := tk.Navigation(home)

	assert.False(t, approuter.PushOnto(nav, home, false, nil))
	assert.True(t, approuter.PushOnto(nav, tk.View("next"), false, nil))
	assert.Len(t, nav.Screens(), 2)
	assert.Same(t, nav, approuter.StackFor(nav))
	assert.Same(t, nav, approuter.StackFor(home))
	assert.Nil(t, approuter.StackFor(nil))
}
