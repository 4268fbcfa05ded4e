package nytimes

// Envelope shared by every NYT API response.
type envelope struct {
	Status     string `json:"status"`
	Copyright  string `json:"copyright"`
	NumResults int    `json:"num_results"`
}

type wireContentResponse struct {
	envelope
	Results []wireArticle `json:"results"`
}

// wireArticle matches the Times Wire content payload.
// ref: https://developer.nytimes.com/docs/timeswire-product/1/overview
type wireArticle struct {
	SlugName           string           `json:"slug_name"`
	Section            string           `json:"section"`
	Subsection         string           `json:"subsection"`
	Title              string           `json:"title"`
	Abstract           string           `json:"abstract"`
	URL                string           `json:"url"`
	URI                string           `json:"uri"`
	Byline             string           `json:"byline"`
	ItemType           string           `json:"item_type"`
	Source             string           `json:"source"`
	UpdatedDate        string           `json:"updated_date"`
	CreatedDate        string           `json:"created_date"`
	PublishedDate      string           `json:"published_date"`
	FirstPublishedDate string           `json:"first_published_date"`
	MaterialTypeFacet  string           `json:"material_type_facet"`
	Kicker             string           `json:"kicker"`
	DesFacet           []string         `json:"des_facet"`
	OrgFacet           []string         `json:"org_facet"`
	PerFacet           []string         `json:"per_facet"`
	GeoFacet           []string         `json:"geo_facet"`
	Multimedia         []wireMultimedia `json:"multimedia"`
	ThumbnailStandard  string           `json:"thumbnail_standard"`
}

type wireMultimedia struct {
	URL     string `json:"url"`
	Format  string `json:"format"`
	Height  int    `json:"height"`
	Width   int    `json:"width"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Caption string `json:"caption"`
}

type sectionListResponse struct {
	envelope
	Results []struct {
		Section     string `json:"section"`
		DisplayName string `json:"display_name"`
	} `json:"results"`
}

type mostPopularResponse struct {
	envelope
	Results []struct {
		URL           string `json:"url"`
		Source        string `json:"source"`
		PublishedDate string `json:"published_date"`
		Section       string `json:"section"`
		Byline        string `json:"byline"`
		Type          string `json:"type"`
		Title         string `json:"title"`
		Abstract      string `json:"abstract"`
	} `json:"results"`
}
