package common

// SessionCookieName is the cookie that carries the opaque session token
// between the browser and the server. The token never appears in response
// bodies.
const SessionCookieName = "plateshare_session"
