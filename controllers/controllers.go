package controllers

import (
	"codestreak/services"
)

// Shared handler dependencies, set once at startup.
var (
	catalog      *services.Catalog
	statsFetcher services.StatsFetcher
)

// Init wires the problem catalog and statistics fetcher into the handlers.
func Init(c *services.Catalog, fetcher services.StatsFetcher) {
	catalog = c
	statsFetcher = fetcher
}
