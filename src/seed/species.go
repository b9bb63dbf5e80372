package seed

import (
	"sync"

	"github.com/gocolly/colly/v2"
)

const speciesSource = "https://oceana.org/ocean-fishes/"

// FetchSpeciesNames scrapes species names from oceana.org. Callers fall back
// to the built-in list when the network is unavailable.
func FetchSpeciesNames() ([]string, error) {
	namesLock := sync.Mutex{}
	names := make([]string, 0)

	c := colly.NewCollector(colly.Async())
	c.OnHTML("div.tb-grid-column", func(e *colly.HTMLElement) {
		h2 := e.DOM.Find("h2.tb-heading")

		namesLock.Lock()
		names = append(names, h2.Text())
		namesLock.Unlock()
	})

	err := c.Visit(speciesSource)
	if err != nil {
		return nil, err
	}

	c.Wait()
	return names, nil
}
