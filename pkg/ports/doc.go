/*
Package ports defines the narrow interfaces the stratum container exposes to
third-party code.

Middleware, action binders, and observers only ever see these interfaces, not
the store itself. This keeps the capability surface handed to extensions
minimal and stable.

# Key Interfaces

  - Dispatcher: Submits an action for synchronous processing.
  - StateReader: Reads the current state.
  - API: The combined read/dispatch capability handed to middleware.
*/
package ports
