package transport

import "net/url"

// Method identifies one EVE API method: a URL path prefix plus an optional
// host override. Methods are immutable values; the catalog entries are
// long-lived constants shared by all callers.
type Method struct {
	// Path is the URL prefix for the method, e.g. "/account/Characters".
	Path string

	// Host optionally overrides the client's configured API host.
	Host string
}

// URL composes the full request URL for the method:
//
//	<scheme>://<host><path>.xml.aspx[?<urlencoded params>]
//
// Params are encoded in sorted key order by net/url. A nil params map yields
// a URL without a query string.
func (m Method) URL(scheme, host string, params url.Values) string {
	if m.Host != "" {
		host = m.Host
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     m.Path + ".xml.aspx",
		RawQuery: params.Encode(),
	}
	return u.String()
}
