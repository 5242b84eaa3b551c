package constants

import "time"

// DefaultEndpoint is the OpenSubtitles XML-RPC endpoint.
const DefaultEndpoint = "https://api.opensubtitles.org/xml-rpc"

// DefaultLanguage is the ISO 639-1 interface language sent with LogIn.
const DefaultLanguage = "en"

// DefaultUserAgent is the test user agent accepted by the service for development.
const DefaultUserAgent = "OSTestUserAgentTemp"

// MaxDownloadIDs is the service-side limit of subtitle file ids per DownloadSubtitles call.
const MaxDownloadIDs = 20

// SessionTimeout is how long the service keeps an idle session alive.
const SessionTimeout = 15 * time.Minute
