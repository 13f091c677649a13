package ecr

import "time"

// UntaggedMarker stands in for the tag of an image that has none.
const UntaggedMarker = "<untagged>"

type ECRImage struct {
	Digest   string
	Tags     []string
	PushedAt time.Time
}

// DisplayTag returns Tags[0] as reported by the service, or UntaggedMarker.
// Additional tags are not shown.
func (i ECRImage) DisplayTag() string {
	if len(i.Tags) == 0 {
		return UntaggedMarker
	}
	return i.Tags[0]
}
