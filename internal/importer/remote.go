package importer

import (
	"strings"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

var (
	fullRemoteMarkers    = []string{"full remote", "100% télétravail"}
	partialRemoteMarkers = []string{"télétravail", "remote"}
)

// DetectRemote classifies a posting from its free text. Full remote markers
// win over partial ones. RemoteNone is never returned: no source states it.
func DetectRemote(title, description string) model.RemoteMode {
	text := strings.ToLower(title + " " + description)

	if containsAny(text, fullRemoteMarkers) {
		return model.RemoteFull
	}
	if containsAny(text, partialRemoteMarkers) {
		return model.RemotePartial
	}
	return model.RemoteNotSpecified
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
