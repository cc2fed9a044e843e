package directory

// Place бизнес из справочника
type Place struct {
	ID       string
	Name     string
	Address  string
	Phone    *string
	Website  *string
	Category string
	Rating   *float64
}

// HasWebsite возвращает true, если у бизнеса указан сайт
// Ссылки на соцсети и конструкторы-заглушки сайтом НЕ считаются
func (p *Place) HasWebsite() bool {
	if p.Website == nil || *p.Website == "" {
		return false
	}
	return !isPlaceholderSite(*p.Website)
}

// City результат текстового поиска города
type City struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// nearbyRequest тело запроса поиска бизнесов в области
type nearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes,omitempty"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// textRequest тело текстового поиска (города)
type textRequest struct {
	TextQuery      string `json:"textQuery"`
	IncludedType   string `json:"includedType,omitempty"`
	MaxResultCount int    `json:"maxResultCount"`
}

// placesResponse ответ справочника со списком мест
type placesResponse struct {
	Places []placeObject `json:"places"`
}

// placeObject место в ответе справочника
type placeObject struct {
	ID               string        `json:"id"`
	DisplayName      *localizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	NationalPhone    string        `json:"nationalPhoneNumber"`
	WebsiteURI       string        `json:"websiteUri"`
	PrimaryType      string        `json:"primaryType"`
	Rating           *float64      `json:"rating"`
	Location         *latLng       `json:"location"`
}

type localizedText struct {
	Text string `json:"text"`
}

// ErrorResponse модель ошибки справочника
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
