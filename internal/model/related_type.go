package model

// RelatedType links likes and broadcasts to other entities.
type RelatedType int64

const (
	RelatedTypeGeneral RelatedType = iota + 1
	RelatedTypeAlbum
	RelatedTypeArtist
	RelatedTypeBroadcast
	RelatedTypeFollowing
	RelatedTypeTrack
	RelatedTypeUser
	RelatedTypeTopAlbum
	RelatedTypeTopArtist
	RelatedTypeTopTrack
	RelatedTypeSongSwap
)

var relatedTypeNames = map[string]RelatedType{
	"general":   RelatedTypeGeneral,
	"album":     RelatedTypeAlbum,
	"artist":    RelatedTypeArtist,
	"broadcast": RelatedTypeBroadcast,
	"following": RelatedTypeFollowing,
	"track":     RelatedTypeTrack,
	"user":      RelatedTypeUser,
	"topalbum":  RelatedTypeTopAlbum,
	"topartist": RelatedTypeTopArtist,
	"toptrack":  RelatedTypeTopTrack,
	"songswap":  RelatedTypeSongSwap,
}

// ParseRelatedType resolves a type name from the API into its id.
// Returns 0 for unknown names, which callers treat as invalid.
func ParseRelatedType(name string) RelatedType {
	return relatedTypeNames[name]
}

func (t RelatedType) String() string {
	for name, id := range relatedTypeNames {
		if id == t {
			return name
		}
	}
	return ""
}
