// Package client talks to the DummyJSON auth API.
//
// # Overview
//
//  1. Client is the transport-agnostic contract used by the flows:
//     Login exchanges credentials for a session token, Me fetches the user
//     record the token belongs to.
//  2. HTTPClient implements it over net/http with JSON bodies. Each request
//     carries an X-Request-ID; Me sends the token as a bearer credential.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx answers are *APIError;
// for Login the server's optional "message" is kept, for Me it is not read.
// 401/403 answers also match ErrUnauthorized via errors.Is.
package client
