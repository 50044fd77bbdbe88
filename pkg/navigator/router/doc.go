// Package router provides the destination registry behind a navigator.Controller.
//
// Each destination name is registered with a build function that creates its
// scene content. The controller asks the router for content whenever a push
// or replace needs a destination that is not already on the stack.
//
// # Basic Usage
//
//	r := router.New().
//	    Register("games", func(params any) (navigator.Content, error) {
//	        return scene.NewPage("Games"), nil
//	    }).
//	    Register("game", func(params any) (navigator.Content, error) {
//	        g := params.(Game)
//	        return scene.NewPage(g.Name), nil
//	    })
//
//	ctrl := navigator.New(navigator.Options{Provider: r})
//
// # Unknown Names
//
// Materialize fails with an error wrapping navigator.ErrRouteNotFound. Because
// Router also lists its routes, the controller's error carries the closest
// registered name as a suggestion.
package router
