package approuter_test

import (
	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/screentest"
)

type Home struct {
	screentest.View
}

type Detail struct {
	screentest.View
	Item  string
	Model *DetailModel
}

func (d *Detail) SetViewModel(vm *DetailModel) { d.Model = vm }

type DetailModel struct {
	Title string
}

type Settings struct {
	screentest.View
}

// fixture is a router on an in-memory window, with a catalog knowing every test screen.
type fixture struct {
	tk       *screentest.Toolkit
	window   *screentest.Window
	catalog  *approuter.Catalog
	router   *approuter.Router
	messages []string
	built    map[string]int
}

func newFixture(opts ...approuter.Option) *fixture {
	tk := screentest.New()
	f := &fixture{
		tk:     tk,
		window: tk.Window("main"),
		built:  make(map[string]int),
	}

	f.catalog = tk.Catalog().
		Register("Home", func() approuter.Screen {
			f.built["Home"]++
			return screentest.Bind(tk, &Home{View: screentest.View{Name: "home"}})
		}).
		Register("Detail", func() approuter.Screen {
			f.built["Detail"]++
			return screentest.Bind(tk, &Detail{View: screentest.View{Name: "detail"}})
		}).
		Register("Settings", func() approuter.Screen {
			f.built["Settings"]++
			return screentest.Bind(tk, &Settings{View: screentest.View{Name: "settings"}})
		}).
		AddTemplate("Main", approuter.Template{
			Initial: "Home",
			Units: map[string]approuter.Unit{
				"Home":     {Constructor: "Home", Stacked: true},
				"Detail":   {Constructor: "Detail"},
				"Settings": {Constructor: "Settings"},
			},
		}).
		AddTemplate("Detail", approuter.Template{
			Initial: "Detail",
			Units:   map[string]approuter.Unit{"Detail": {Constructor: "Detail"}},
		})

	base := []approuter.Option{
		approuter.WithWindow(f.window),
		approuter.WithCatalog(f.catalog),
		approuter.WithDebugOutput(func(m string) { f.messages = append(f.messages, m) }),
	}
	f.router = approuter.New(append(base, opts...)...)
	return f
}

// rootNavigation installs a navigation holding a home screen as the root.
func (f *fixture) rootNavigation() (*screentest.Navigation, *Home) {
	home := screentest.Bind(f.tk, &Home{View: screentest.View{Name: "home"}})
	nav := f.tk.Navigation(home)
	f.window.SetRoot(nav)
	return nav, home
}
