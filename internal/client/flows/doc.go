// Package flows holds the contracts shared by the two page-level state
// machines: the login flow (credential acquisition) and the profile flow
// (protected resource). The flows never reference each other; they meet
// only through a TokenStore and a Navigator.
package flows
