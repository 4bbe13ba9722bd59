package selection

// Package selection maps a user's category and quality choice to a yt-dlp
// format selector and checks choices against a quality map.
