// Package models holds the request and response bodies of the records API.
package models
