// Package markup defines the server-side node tree that Glint pages are
// built from.
//
// A page handler returns a *Node describing the body of the page. The tree
// is rendered to HTML by the render package. Four kinds of content exist:
// elements, text, raw HTML, and islands. Islands are the only nodes that
// require client-side hydration; a page with no islands renders to fully
// static HTML.
//
// # Building trees
//
//	body := markup.El("main", nil,
//	    markup.El("h1", nil, markup.Text("Hello")),
//	    markup.Island("counter", map[string]any{"start": 3},
//	        markup.Text("3"),
//	    ),
//	)
//
// Text content is escaped during rendering. Raw nodes bypass escaping and
// must only be used with trusted content.
package markup
