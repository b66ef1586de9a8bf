/*
Package domain contains the core value types shared by the stratum container.

It defines Actions, the Reducer contract, the Listener callback, and the
sentinel errors the container surfaces. This package is kept pure and free of
I/O so that it can be imported by middleware, hosts, and tests alike without
dragging in the container itself.

# Key Entities

  - Action: A structured record describing an intended state change, keyed by
    its Type discriminator.
  - Reducer: The pure transition function (state, action) -> state.
  - Listener: The zero-argument callback notified after every transition.
*/
package domain
