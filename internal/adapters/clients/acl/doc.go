// Package acl provides Anti-Corruption Layer adapters for the external
// services this server depends on: the completion API that powers entry
// tagging and generation, and the payment provider consulted by the
// billing sync path.
//
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes:
//
//   - External DTOs never leak into the domain
//   - External failures map to domain errors ([MapHTTPError])
//   - External data is validated before domain objects are built
//
// Adapters embed [BaseAdapter] for request plumbing and decode responses
// with [DecodeResponse]. All upstream failures here surface as
// [domain.ErrUnavailable]; a well-formed 2xx response that carries no
// usable payload is the one exception, mapped by the completion adapter
// to [domain.ErrMalformedCompletion].
package acl
