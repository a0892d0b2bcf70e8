package domain

// AspectRatio selects the output image shape. "auto" leaves the choice
// to the model.
type AspectRatio string

const (
	AspectRatioAuto AspectRatio = "auto"
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio2x3  AspectRatio = "2:3"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatio4x5  AspectRatio = "4:5"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio3x2  AspectRatio = "3:2"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio5x4  AspectRatio = "5:4"
	AspectRatio21x9 AspectRatio = "21:9"
)

func (a AspectRatio) String() string { return string(a) }

func (a AspectRatio) IsValid() bool {
	switch a {
	case AspectRatioAuto, AspectRatio1x1, AspectRatio2x3, AspectRatio3x4,
		AspectRatio4x5, AspectRatio9x16, AspectRatio16x9, AspectRatio3x2,
		AspectRatio4x3, AspectRatio5x4, AspectRatio21x9:
		return true
	}
	return false
}

// Resolution is the output resolution tier. Tiers above 1K route to the
// pro image model and require a personal API key.
type Resolution string

const (
	Resolution1K Resolution = "1K"
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

func (r Resolution) String() string { return string(r) }

func (r Resolution) IsValid() bool {
	switch r {
	case Resolution1K, Resolution2K, Resolution4K:
		return true
	}
	return false
}

// IsHighRes reports whether the tier needs the pro model.
func (r Resolution) IsHighRes() bool {
	return r == Resolution2K || r == Resolution4K
}

// OutputFormat is the encoding of the generated image.
type OutputFormat string

const (
	OutputFormatJPEG OutputFormat = "JPEG"
	OutputFormatPNG  OutputFormat = "PNG"
)

func (f OutputFormat) String() string { return string(f) }

func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatJPEG, OutputFormatPNG:
		return true
	}
	return false
}

// FeedSort selects the ordering of the public feed.
type FeedSort string

const (
	FeedSortTime  FeedSort = "time"
	FeedSortLikes FeedSort = "likes"
	FeedSortViews FeedSort = "views"
)

func (s FeedSort) String() string { return string(s) }

func (s FeedSort) IsValid() bool {
	switch s {
	case FeedSortTime, FeedSortLikes, FeedSortViews:
		return true
	}
	return false
}
