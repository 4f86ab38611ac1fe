package service

import (
	"fmt"

	"dedup-service/internal/dedup/model"
)

// Explain — короткое пояснение для пользователя по лучшему совпадению.
func Explain(res model.DetectionResult) string {
	if !res.IsDuplicate || len(res.Matches) == 0 {
		return "No similar documents found in this project."
	}
	top := res.Matches[0]

	name := top.OriginalName
	if name == "" {
		name = top.StoredName
	}

	var what string
	switch top.MatchType {
	case model.MatchExact:
		what = fmt.Sprintf("This file appears to be identical to %q", name)
	case model.MatchVersion:
		what = fmt.Sprintf("This file looks like another version of %q", name)
	case model.MatchSimilarContent:
		what = fmt.Sprintf("This file has content very similar to %q", name)
	default:
		what = fmt.Sprintf("This file has a name similar to %q", name)
	}

	var action string
	switch res.Recommendation {
	case model.Overwrite:
		action = "Replacing the existing document is recommended."
	case model.Merge:
		action = "Merging the two documents is recommended."
	case model.Skip:
		action = "Skipping this upload is recommended."
	default:
		action = "Keeping both documents is recommended."
	}

	return fmt.Sprintf("%s (%d%% match), uploaded on %s. %s",
		what, top.Similarity, top.UploadedAt.Format("Jan 2, 2006"), action)
}
