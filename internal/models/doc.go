// Package models mirrors the catalog backend's JSON data model.
//
// Types carry struct tags matching the backend's field naming exactly
// (including its quirks, like Genre's two name fields and Episode's
// upper-cased URL suffixes) so that decoding stays a straight unmarshal.
// Request types validate client-side before any network call is made.
package models
