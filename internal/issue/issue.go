// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ProviderNotFoundId Id = iota + 1
	FunctionNotFoundId
	ConfigLoadFailedId
	HelpRenderFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links to the library documentation for this issue
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue with a glamour standard style ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	gofakeitDocs HttpLink = "https://pkg.go.dev/github.com/brianvoe/gofakeit/v7"

	providerNotFoundIssue = &Issue{
		id: ProviderNotFoundId,
		mdMsg: `
# Unknown provider

Provider names are the last segment of the qualified name and are case-sensitive:
` + "`gofakeit.internet`" + ` is looked up as ` + "`internet`" + `.

## Things you can try
- List every provider:
~~~
$ fakerhelp providers
~~~
- Find the function you need directly:
~~~
$ fakerhelp find <part-of-name>
~~~`,
		docLinks: []HttpLink{gofakeitDocs},
	}

	functionNotFoundIssue = &Issue{
		id: FunctionNotFoundId,
		mdMsg: `
# Unknown function

Function names are lookup keys such as ` + "`ipv4address`" + ` or ` + "`firstname`" + `.
They are lower case and contain no separators.

## Things you can try
- Search by part of the name:
~~~
$ fakerhelp find <part-of-name>
~~~
- Browse the functions of one provider:
~~~
$ fakerhelp ls <provider>
~~~`,
		docLinks: []HttpLink{gofakeitDocs},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

fakerhelp could not read its configuration file and fell back to the defaults.

## Things you can try
- Check the file syntax (CUE or TOML)
- Recreate a default file:
~~~
$ fakerhelp config init
~~~
- Show the configuration that is in effect:
~~~
$ fakerhelp config show
~~~`,
	}

	helpRenderFailedIssue = &Issue{
		id: HelpRenderFailedId,
		mdMsg: `
# Failed to render help

The reference text could not be formatted for your terminal.

## Things you can try
- Use plain output by setting the style in your config file:
~~~cue
ui: style: "notty"
~~~`,
	}

	issues = map[Id]*Issue{
		providerNotFoundIssue.Id(): providerNotFoundIssue,
		functionNotFoundIssue.Id(): functionNotFoundIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		helpRenderFailedIssue.Id(): helpRenderFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
