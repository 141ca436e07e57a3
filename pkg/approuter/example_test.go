package approuter_test

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/screentest"
)

// Screens of a small game browser
type GameList struct {
	screentest.View
}

type GameDetail struct {
	screentest.View
	Game string
}

type Options struct {
	screentest.View
}

func newGameCatalog(tk *screentest.Toolkit) *approuter.Catalog {
	return tk.Catalog().
		Register("list", func() approuter.Screen {
			return screentest.Bind(tk, &GameList{View: screentest.View{Name: "list"}})
		}).
		Register("detail", func() approuter.Screen {
			return screentest.Bind(tk, &GameDetail{View: screentest.View{Name: "detail"}})
		}).
		Register("options", func() approuter.Screen {
			return screentest.Bind(tk, &Options{View: screentest.View{Name: "options"}})
		}).
		AddTemplate("Games", approuter.Template{
			Initial: "GameList",
			Units: map[string]approuter.Unit{
				"GameList":   {Constructor: "list", Stacked: true},
				"GameDetail": {Constructor: "detail"},
				"Options":    {Constructor: "options"},
			},
		})
}

// Example demonstrates installing a root, pushing a configured screen and presenting
// another one modally.
func Example() {
	tk := screentest.New()
	window := tk.Window("main")
	r := approuter.New(
		approuter.WithWindow(window),
		approuter.WithCatalog(newGameCatalog(tk)),
		approuter.WithDebugOutput(approuter.DebugNone),
	)

	// The initial unit is stacked, so the list is installed inside a new navigation
	list, err := approuter.Presenter[*GameList](r).
		FromTemplate("Games", true).
		EmbedInStack(nil).
		SetAsRoot(approuter.NoAnimation, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("root:", r.Topmost(), "on", list.Stack())

	detail, err := approuter.Presenter[*GameDetail](r).
		FromTemplate("Games", false).
		Configure("game", func(d *GameDetail) error {
			d.Game = "Tetris"
			return nil
		}).
		Push(false, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pushed:", detail.Game, len(list.Stack().Screens()))

	_, err = approuter.Presenter[*Options](r).
		FromTemplate("Games", false).
		EmbedInStack(nil).
		Present(false, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("top:", r.Topmost(), approuter.IsModal(r.Topmost()))

	// Output:
	// root: list on navigation
	// pushed: Tetris 2
	// top: options true
}

// Example_failure demonstrates inspecting a failed presentation.
func Example_failure() {
	tk := screentest.New()
	window := tk.Window("main")
	window.SetRoot(tk.View("splash"))
	r := approuter.New(
		approuter.WithWindow(window),
		approuter.WithCatalog(newGameCatalog(tk)),
		approuter.WithDebugOutput(approuter.DebugNone),
	)

	_, err := approuter.Presenter[*GameDetail](r).FromTemplate("Games", false).Push(false, nil)

	fmt.Println(errors.Is(err, approuter.ErrNoStackToPushOn))
	fmt.Println(approuter.Describe(err))

	// Output:
	// true
	// There is no navigation stack to push GameDetail onto.
}

// Example_steps demonstrates label overrides keeping their position.
func Example_steps() {
	tk := screentest.New()
	r := approuter.New(
		approuter.WithCatalog(newGameCatalog(tk)),
		approuter.WithDebugOutput(approuter.DebugNone),
	)

	p := approuter.Presenter[*GameDetail](r).
		FromTemplate("Games", false).
		Configure("title", func(*GameDetail) error { fmt.Println("title v1"); return nil }).
		Configure("cover", func(*GameDetail) error { fmt.Println("cover"); return nil }).
		Configure("title", func(*GameDetail) error { fmt.Println("title v2"); return nil })

	if _, err := p.ProvideSource(); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// title v2
	// cover
}

// Example_navigation demonstrates popping and tab selection helpers.
func Example_navigation() {
	tk := screentest.New()
	games := tk.Navigation(screentest.Bind(tk, &GameList{View: screentest.View{Name: "list"}}))
	options := screentest.Bind(tk, &Options{View: screentest.View{Name: "options"}})
	tabs := tk.TabBar(games, options)

	window := tk.Window("main")
	r := approuter.New(approuter.WithWindow(window), approuter.WithDebugOutput(approuter.DebugNone))
	r.SetRoot(tabs)

	detail := screentest.Bind(tk, &GameDetail{View: screentest.View{Name: "detail"}})
	games.Push(detail, false, nil)
	fmt.Println(r.Topmost())

	approuter.SelectTab[*Options](tabs)
	fmt.Println(r.Topmost())

	approuter.SelectTab[*GameList](tabs)
	r.Close(detail, false, nil)
	fmt.Println(r.Topmost())

	// Output:
	// detail
	// options
	// list
}
