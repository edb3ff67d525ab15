// Package client contains the client-side building blocks that talk to the
// outside world: the backend gateway and the local database bootstrap.
//
// # Gateway
//
// Two independent HTTP origins serve the client. The identity origin handles
// registration, login, the username check and profiles (IdentityHTTPClient);
// the legacy origin still handles video upload and browsing (VideoHTTPClient).
// Gateway groups both. Clients are stateless request/response translators:
// no retries, no caching, and bearer credentials are passed per call.
//
// # Errors
//
// Every failed call returns a *BackendError. Match the two classes callers
// care about with errors.Is: ErrUnauthorized and ErrUnavailable.
//
// # Local database
//
// InitDatabase and RunMigrations open the SQLite file that backs the session
// store and apply the embedded goose migrations.
package client
