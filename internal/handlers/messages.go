package handlers

const (
	msgGreeting = "Send me an Instagram link (post/reel/story/highlight) and I will download the photos and videos and post them here.\n\n" +
		"If Instagram refuses to serve media without a login, put browser cookies into the file named by IG_COOKIES_FILE."

	msgHelp = "Commands:\n" +
		"/start — what this bot does\n" +
		"/help — this message\n" +
		"/stats — bot statistics (owner only)\n\n" +
		"Or just paste an Instagram link."

	msgPrompt      = "Please send me an Instagram link (post/reel/story/highlight)."
	msgDownloading = "Downloading media from Instagram…"
	msgFound       = "Found %d file(s) (%s). Sending…"
	msgNoMedia     = "Could not find any media at this link."
	msgPart        = "Part %d/%d"

	msgFailed = "Could not download from this link.\n\n" +
		"Error: %s\n" +
		"A common cause: Instagram requires a login. Add cookies via IG_COOKIES_FILE."

	msgOwnerOnly = "This command is only available to the bot owner."
)
