package domain

import "slices"

// Region - регион, для которого публикуется графік
type Region struct {
	Code string
	Name string
}

// Catalog - справочник регионов и очередей, из которого выбирает мастер настройки
type Catalog struct {
	regions []Region
	queues  map[string][]string
}

// DefaultQueues - подочереди 1.1 ... 6.2
var DefaultQueues = []string{
	"1.1", "1.2", "2.1", "2.2", "3.1", "3.2",
	"4.1", "4.2", "5.1", "5.2", "6.1", "6.2",
}

// NewCatalog - каталог из списка регионов и очередей по коду региона
func NewCatalog(regions []Region, queues map[string][]string) *Catalog {
	return &Catalog{regions: regions, queues: queues}
}

// DefaultCatalog - регионы, которые поддерживает источник графиков
func DefaultCatalog() *Catalog {
	regions := []Region{
		{Code: "kyiv", Name: "Київ"},
		{Code: "kyiv-region", Name: "Київщина"},
		{Code: "dnipro", Name: "Дніпропетровщина"},
		{Code: "odesa", Name: "Одещина"},
	}
	queues := make(map[string][]string, len(regions))
	for _, r := range regions {
		queues[r.Code] = DefaultQueues
	}
	return NewCatalog(regions, queues)
}

func (c *Catalog) Regions() []Region { return c.regions }

// Region - регион по коду
func (c *Catalog) Region(code string) (Region, bool) {
	for _, r := range c.regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// RegionName - человекочитаемое имя, либо сам код если регион неизвестен
func (c *Catalog) RegionName(code string) string {
	if r, ok := c.Region(code); ok {
		return r.Name
	}
	return code
}

func (c *Catalog) Queues(region string) []string { return c.queues[region] }

func (c *Catalog) HasRegion(code string) bool {
	_, ok := c.Region(code)
	return ok
}

func (c *Catalog) HasQueue(region, queue string) bool {
	return slices.Contains(c.queues[region], queue)
}
