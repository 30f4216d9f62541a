package page

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// KindForMime classifies a MIME type: anything under video/ is video,
// everything else is treated as an image.
func KindForMime(mime string) MediaKind {
	if strings.HasPrefix(mime, "video") {
		return KindVideo
	}
	return KindImage
}

// DataURI encodes raw file bytes as a self-contained data URI. When the
// caller has no declared MIME type the content is sniffed instead.
func DataURI(data []byte, declaredMime string) (string, MediaKind) {
	mime := strings.TrimSpace(declaredMime)
	if mime == "" {
		mime = mimetype.Detect(data).String()
	}
	uri := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	return uri, KindForMime(mime)
}
