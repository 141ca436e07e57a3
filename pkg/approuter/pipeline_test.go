package approuter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/screentest"
)

func TestPushFromDefaultTemplate(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()

	detail, err := approuter.Presenter[*Detail](f.router).Push(false, nil)
	require.NoError(t, err)

	assert.Equal(t, []approuter.Screen{home, detail}, nav.Screens())
	assert.Same(t, nav, detail.Stack())
	assert.Equal(t, 1, f.built["Detail"])
}

func TestPushTemplateInitialUnwrapsStack(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()

	home, err := approuter.Presenter[*Home](f.router).FromTemplate("Main", true).Push(false, nil)
	require.NoError(t, err)

	assert.Same(t, nav, home.Stack())
	assert.Len(t, nav.Screens(), 2)
}

func TestPipelineRunsOncePerAction(t *testing.T) {
	f := newFixture()
	_, home := f.rootNavigation()

	configured := 0
	p := approuter.Presenter[*Settings](f.router).
		FromTemplate("Main", false).
		ConfigureFunc(func(*Settings) { configured++ })

	first, err := p.Present(false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.built["Settings"])
	assert.Equal(t, 1, configured)
	assert.Same(t, first, home.PresentedScreen())

	first.Dismiss(false, nil)
	require.Nil(t, home.PresentedScreen())

	second, err := p.Present(false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, f.built["Settings"])
	assert.Equal(t, 2, configured)
	assert.NotSame(t, first, second)
}

func TestPreconstructedReturnsSameInstance(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()
	detail := screentest.Bind(f.tk, &Detail{})

	p := approuter.PresenterFor(f.router, detail)
	first, err := p.Push(false, nil)
	require.NoError(t, err)
	second, err := p.Push(false, nil)
	require.NoError(t, err)

	assert.Same(t, detail, first)
	assert.Same(t, detail, second)
	assert.Len(t, nav.Screens(), 2)
}

func TestLabelOverrideKeepsPosition(t *testing.T) {
	f := newFixture()
	var order []int
	appendStep := func(n int) func(*Detail) error {
		return func(*Detail) error {
			order = append(order, n)
			return nil
		}
	}

	p := approuter.Presenter[*Detail](f.router).
		Configure("first", appendStep(1)).
		Configure("second", appendStep(2)).
		Configure("third", appendStep(3)).
		Configure("second", appendStep(22))

	_, err := p.ProvideSource()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 22, 3}, order)
	assert.Equal(t, []string{"first", "second", "third"}, p.Steps().Labels())

	p.Configure("fourth", appendStep(4))
	order = nil
	_, err = p.ProvideSource()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 22, 3, 4}, order)
}

func TestStepsRemove(t *testing.T) {
	var steps approuter.Steps[*Detail]
	ok := func(*Detail) error { return nil }
	steps.Set("a", ok)
	steps.Set("b", ok)
	steps.Set("c", ok)

	steps.Remove("b")
	steps.Remove("missing")

	assert.Equal(t, []string{"a", "c"}, steps.Labels())
	assert.Equal(t, 2, steps.Len())
}

func TestStepFailureAbortsAction(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()
	boom := errors.New("boom")

	ran := false
	_, err := approuter.Presenter[*Detail](f.router).
		Configure("load", func(*Detail) error { return boom }).
		Configure("after", func(*Detail) error {
			ran = true
			return nil
		}).
		Push(false, nil)

	require.ErrorIs(t, err, boom)
	assert.False(t, ran)
	assert.Len(t, nav.Screens(), 1)
	assert.Nil(t, approuter.KindOf(err))

	var pe *approuter.PresentationError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "load", pe.Step)
	assert.Equal(t, "push", pe.Op)
	assert.Equal(t, "Detail", pe.Screen)
}

func TestConstructionFailure(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()

	_, err := approuter.Presenter[*Settings](f.router).FromTemplate("Missing", false).Push(false, nil)
	require.ErrorIs(t, err, approuter.ErrConstructionFailed)
	assert.Len(t, nav.Screens(), 1)

	_, err = approuter.Presenter[*Settings](f.router).FromTemplate("Detail", true).Push(false, nil)
	require.ErrorIs(t, err, approuter.ErrConstructionFailed)

	cause := errors.New("offline")
	_, err = approuter.Presenter[*Settings](f.router).
		From(func() (*Settings, error) { return nil, cause }).
		Push(false, nil)
	require.ErrorIs(t, err, approuter.ErrConstructionFailed)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, approuter.ErrConstructionFailed, approuter.KindOf(err))
}

func TestFromResource(t *testing.T) {
	f := newFixture()
	f.catalog.AddResource("SettingsPanel", "Settings")

	s, err := approuter.Presenter[*Settings](f.router).FromResource("SettingsPanel").ProvideSource()
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = approuter.Presenter[*Settings](f.router).FromResource("").ProvideSource()
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = approuter.Presenter[*Settings](f.router).FromResource("Detail").ProvideSource()
	assert.ErrorIs(t, err, approuter.ErrConstructionFailed)
}

func TestPushRequiresStack(t *testing.T) {
	f := newFixture()
	root := screentest.Bind(f.tk, &Home{})
	f.window.SetRoot(root)

	_, err := approuter.Presenter[*Detail](f.router).Push(false, nil)
	require.ErrorIs(t, err, approuter.ErrNoStackToPushOn)
	assert.True(t, approuter.IsTargetFailure(err))
	assert.Equal(t, 1, f.built["Detail"])
}

func TestPushRefusesStackContainer(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()

	_, err := approuter.Presenter[*Detail](f.router).EmbedInStack(nil).Push(false, nil)
	require.ErrorIs(t, err, approuter.ErrPushingStack)
	assert.Len(t, nav.Screens(), 1)
}

func TestPresentEmbeddedInNewStack(t *testing.T) {
	f := newFixture()
	_, home := f.rootNavigation()
	top := f.router.Topmost()
	require.Same(t, home, top)

	detail, err := approuter.Presenter[*Detail](f.router).
		FromTemplate("Main", false).
		EmbedInStack(nil).
		OnTop().
		Present(false, nil)
	require.NoError(t, err)

	wrapper := detail.Stack()
	require.NotNil(t, wrapper)
	assert.Equal(t, []approuter.Screen{detail}, wrapper.Screens())
	assert.Same(t, wrapper, top.PresentedScreen())
	assert.Same(t, detail, f.router.Topmost())
}

func TestEmbedInExistingContainers(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()
	tabs := f.tk.TabBar()

	parent, err := approuter.Presenter[*Detail](f.router).EmbedInStack(nav).ProvideEmbedded()
	require.NoError(t, err)
	assert.Same(t, nav, parent)
	assert.Len(t, nav.Screens(), 2)
	assert.Same(t, home, nav.Screens()[0])

	source, parent, err := approuter.Presenter[*Settings](f.router).FromTemplate("Main", false).EmbedInTabs(tabs).Build()
	require.NoError(t, err)
	assert.Same(t, tabs, parent)
	assert.Same(t, source, tabs.SelectedScreen())
}

func TestEmbeddingFailure(t *testing.T) {
	f := newFixture()
	f.rootNavigation()

	_, err := approuter.Presenter[*Detail](f.router).
		EmbedIn(func(*Detail) (approuter.Screen, error) { return nil, nil }).
		Present(false, nil)
	require.ErrorIs(t, err, approuter.ErrEmbeddingFailed)

	bare := approuter.New(approuter.WithCatalog(approuter.NewCatalog().
		Register("Detail", func() approuter.Screen { return &Detail{} }).
		AddTemplate("Detail", approuter.Template{Initial: "Detail", Units: map[string]approuter.Unit{"Detail": {Constructor: "Detail"}}})))
	_, err = approuter.Presenter[*Detail](bare).EmbedInTabs(nil).ProvideEmbedded()
	require.ErrorIs(t, err, approuter.ErrEmbeddingFailed)
}

func TestNilSourceIsConstructionFailure(t *testing.T) {
	f := newFixture()
	_, home := f.rootNavigation()

	_, err := approuter.Presenter[*Detail](f.router).
		From(func() (*Detail, error) { return nil, nil }).
		Present(false, nil)
	require.ErrorIs(t, err, approuter.ErrConstructionFailed)
	assert.Equal(t, approuter.ErrConstructionFailed, approuter.KindOf(err))
	assert.Nil(t, home.PresentedScreen())
}

func TestTypedNilEmbeddingIsEmbeddingFailure(t *testing.T) {
	f := newFixture()
	_, home := f.rootNavigation()

	_, err := approuter.Presenter[*Detail](f.router).
		EmbedIn(func(*Detail) (approuter.Screen, error) {
			var d *Detail
			return d, nil
		}).
		Present(false, nil)
	require.ErrorIs(t, err, approuter.ErrEmbeddingFailed)
	assert.Equal(t, approuter.ErrEmbeddingFailed, approuter.KindOf(err))
	assert.Nil(t, home.PresentedScreen())
}

func TestTargetMismatch(t *testing.T) {
	f := newFixture()
	_, home := f.rootNavigation()

	called := false
	_, err := approuter.Presenter[*Detail](f.router).
		OnFunc(func() (approuter.Screen, error) {
			called = true
			return nil, nil
		}).
		Present(false, nil)
	require.ErrorIs(t, err, approuter.ErrTargetConstructionFailed)
	assert.True(t, called)
	assert.Nil(t, home.PresentedScreen())

	_, err = approuter.ResolveTarget[*Settings](f.router, approuter.Top())
	require.ErrorIs(t, err, approuter.ErrTargetConstructionFailed)

	target, err := approuter.ResolveTarget[*Home](f.router, approuter.Top())
	require.NoError(t, err)
	assert.Same(t, home, target)
}

func TestOnRootAndOnScreen(t *testing.T) {
	f := newFixture()
	nav, home := f.rootNavigation()

	target, err := approuter.Presenter[*Detail](f.router).OnRoot().ResolveTarget()
	require.NoError(t, err)
	assert.Same(t, nav, target)

	other := f.tk.View("other")
	detail, err := approuter.Presenter[*Detail](f.router).OnScreen(other).Present(false, nil)
	require.NoError(t, err)
	assert.Same(t, detail, other.PresentedScreen())
	assert.Nil(t, home.PresentedScreen())
}

func TestShow(t *testing.T) {
	f := newFixture()
	f.rootNavigation()

	_, err := approuter.Presenter[*Detail](f.router).Show()
	require.ErrorIs(t, err, approuter.ErrNotImplemented)

	detail, err := approuter.Presenter[*Detail](f.router).
		OnShow(func(p *approuter.Pipeline[*Detail]) (*Detail, error) {
			return p.Push(false, nil)
		}).
		Show()
	require.NoError(t, err)
	assert.Same(t, detail, f.router.Topmost())
}

func TestAnimatedPushCompletesOnFinish(t *testing.T) {
	f := newFixture()
	nav, _ := f.rootNavigation()

	done := false
	detail, err := approuter.Presenter[*Detail](f.router).Push(true, func() { done = true })
	require.NoError(t, err)

	assert.Same(t, detail, nav.TopScreen())
	assert.False(t, done)
	assert.Equal(t, 1, f.tk.Transitions.Pending())

	f.tk.Transitions.Finish()
	assert.True(t, done)
}

func TestCloneIsIndependent(t *testing.T) {
	f := newFixture()
	base := approuter.Presenter[*Detail](f.router).Configure("a", func(*Detail) error { return nil })

	clone := base.Clone().Configure("b", func(*Detail) error { return nil })

	assert.Equal(t, []string{"a"}, base.Steps().Labels())
	assert.Equal(t, []string{"a", "b"}, clone.Steps().Labels())
	assert.Same(t, f.router, clone.Router())
}

func TestDebugOutputOnFailure(t *testing.T) {
	f := newFixture()
	f.window.SetRoot(screentest.Bind(f.tk, &Home{}))

	_, err := approuter.Presenter[*Detail](f.router).Push(false, nil)
	require.Error(t, err)
	require.NotEmpty(t, f.messages)
	assert.Contains(t, f.messages[len(f.messages)-1], "#[Presenter<Detail>]")
}
