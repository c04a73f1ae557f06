package types

const ContextUserKey = "user"

// AccessTokenCookie is the cookie the login handler sets and the auth
// middleware falls back to when no Authorization header is present.
const AccessTokenCookie = "access_token_cookie"
