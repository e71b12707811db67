package responses

// Avatar is the image lookup result; URL falls back to the placeholder when
// the image service has nothing or fails.
type Avatar struct {
	URL string `json:"url"`
}

type AvatarUpload struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}
