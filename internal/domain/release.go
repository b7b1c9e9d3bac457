package domain

// ReleaseInfo is the transient identity of the latest tagged release.
// Only TagName survives into the component record.
type ReleaseInfo struct {
	TagName    string
	TarballURL string
}

// CommitInfo is the transient identity of the latest git-main commit.
type CommitInfo struct {
	SHA string
}

// ShortSHA abbreviates a commit hash for display.
func ShortSHA(sha string) string {
	if len(sha) >= 8 {
		return sha[:8]
	}
	return sha
}
