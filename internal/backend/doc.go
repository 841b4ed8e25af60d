// Package backend implements the client for the remote portfolio REST API.
//
// It is the only package permitted to speak to the API. All responses are
// normalized into one canonical shape at this boundary: the API is served in
// two deployment variants, one wrapping payloads in a
// {success, message, data: {...}} envelope and one returning the payload
// fields at the top level. Both are accepted; anything else fails with
// ErrUnrecognizedResponseShape instead of silently decoding to zero values.
//
// Error taxonomy:
//   - ErrAuthenticationFailed: the login endpoint rejected the credentials;
//     the wrapped error text carries the server-supplied message.
//   - ErrUnauthorized: a 401 from any authenticated call. This is the sole
//     signal that a cached session is no longer valid.
//   - ErrNetworkUnavailable: the API could not be reached at all.
//   - ErrUnrecognizedResponseShape: the API answered with a body matching
//     none of the known envelope variants.
package backend
