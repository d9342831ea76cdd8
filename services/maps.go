package services

import "net/url"

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// MapLink returns the Google Maps search URL for a place title.
func MapLink(title string) string {
	return mapsSearchURL + url.QueryEscape(title)
}
