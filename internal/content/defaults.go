package content

var (
	AboutMe = `I build production web apps end to end, from offline-first PWAs and Chrome extensions
to the Node.js services behind them. Most of my recent work sits where real-time collaboration
meets AI: CRDT editors that sync through Google Drive, content tools backed by Vertex AI, and
localization tooling that runs directly inside the page you are testing.`

	gnoteDescription = `A modern, **offline-first** note-taking application featuring rich text editing,
Google Drive synchronization, real-time P2P collaboration, and AI-powered writing assistance.
Built as a PWA with a companion Chrome Extension.`

	graphosDescription = `A comprehensive platform for detecting AI-generated content and rewriting text
to sound more natural. Features voice profile matching, multi-language support, and a complete
admin dashboard for user management.`

	localizeDescription = `A Chrome Extension helping developers and QA testers verify localization
directly on any website. Features live translation, *pseudo-localization* for UI testing, and
comprehensive bug reporting.`
)

// Default returns the built-in catalog, already prepared.
func Default() *Catalog {
	c := defaultCatalog()
	if err := c.Prepare(); err != nil {
		// Built-in markdown is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func defaultCatalog() *Catalog {
	return &Catalog{
		Profile: Profile{
			Name:      "Joe",
			Headline:  "Full-Stack Developer | AI Integration Specialist",
			Summary:   "Specializing in Chrome Extensions, PWAs, and AI-powered applications with real-time collaboration. Building production-ready apps that scale to thousands of users.",
			Avatar:    "/images/avatar.png",
			ResumeURL: "/static/Joe_Resume.html",
		},
		About: About{
			Text: AboutMe,
			Highlights: []Highlight{
				{Title: "Frontend Excellence", Points: []string{"React 18/19, TypeScript, Next.js", "State: Zustand, TanStack Query", "UI: Tailwind, Framer Motion, Radix UI", "Rich Text: TipTap/ProseMirror"}},
				{Title: "Backend & Infrastructure", Points: []string{"Node.js, Express, REST APIs", "Firebase, Firestore, Cloud Run", "Redis, BullMQ, WebSocket", "Docker, CI/CD, Vercel"}},
				{Title: "Chrome Extension Expert", Points: []string{"Manifest V3 Architecture", "Service Workers, Content Scripts", "Chrome Identity & Storage APIs", "3 Published Extensions"}},
				{Title: "Real-time & Offline", Points: []string{"WebRTC P2P Connections", "Yjs CRDT Collaboration", "PWA & Service Workers", "IndexedDB, Offline-first"}},
				{Title: "AI Integration", Points: []string{"Google Vertex AI & Gemini", "AI Content Detection", "Text Humanization", "Embeddings & NLP"}},
			},
		},
		Projects: []Project{
			{
				ID:          "gnote",
				Title:       "G-Note",
				Type:        "PWA + Chrome Extension",
				Tagline:     "Free note-taking app with Google Drive sync and real-time collaboration",
				Description: gnoteDescription,
				Features: []string{
					"Offline-First PWA", "Google Drive Sync", "Real-time Collaboration (WebRTC + Yjs)",
					"AI Writing Assistant (Gemini)", "Rich Text Editor (TipTap)", "19 Languages Support", "Chrome Extension",
				},
				TechStack: []string{
					"React 19", "TypeScript", "Vite", "Tailwind CSS", "Zustand",
					"TipTap", "Yjs", "Dexie", "Node.js", "Express", "Firestore", "Vertex AI", "WebRTC",
				},
				ArchitectureHighlights: []string{
					"CRDT-based conflict-free editing", "Tombstone pattern for sync",
					"Service Worker caching strategies", "P2P signaling server",
				},
				Metrics: []Metric{
					{Label: "Lines of Code", Value: "25,000+"},
					{Label: "React Components", Value: "50+"},
					{Label: "Languages", Value: "19"},
				},
				Links: []Link{
					{Label: "Web App", URL: "https://gnote.graphosai.com", Icon: "ExternalLink"},
					{Label: "Chrome Extension", URL: "https://chromewebstore.google.com/detail/pncgcnggbbbgnhdniigjndekfmmblioj", Icon: "Chrome"},
				},
				IconImage: "icons/G-Note.png",
				Screenshots: []string{
					"G-Note image/unnamed.png",
					"G-Note image/unnamed (1).png",
					"G-Note image/unnamed (2).png",
					"G-Note image/unnamed (3).png",
					"G-Note image/unnamed (4).png",
				},
				GradientFrom: "from-emerald-500/30",
				GradientTo:   "to-teal-600/20",
			},
			{
				ID:          "graphos-ai-studio",
				Title:       "Graphos AI Studio",
				Type:        "Chrome Extension + Web App",
				Tagline:     "AI content detection and humanization platform",
				Description: graphosDescription,
				Features: []string{
					"AI Content Detection", "Content Humanization", "Voice Profile System",
					"Rich Text Editor", "Credit-based Payments", "Admin Dashboard",
				},
				TechStack: []string{
					"React 18", "TypeScript", "Vite", "Tailwind CSS", "Zustand",
					"TanStack Query", "TipTap", "i18next", "Node.js", "Express",
					"Firestore", "Redis", "BullMQ", "Vertex AI", "LemonSqueezy",
				},
				ArchitectureHighlights: []string{
					"Circuit breaker pattern for AI calls", "Multi-layer caching (Redis + LRU)",
					"Background job processing", "Token refresh with single-flight pattern",
				},
				Metrics: []Metric{
					{Label: "Lines of Code", Value: "60,000+"},
					{Label: "React Components", Value: "150+"},
					{Label: "API Endpoints", Value: "40+"},
				},
				Links: []Link{
					{Label: "Website", URL: "https://graphosai.com", Icon: "ExternalLink"},
					{Label: "Web App", URL: "https://app.graphosai.com", Icon: "ExternalLink"},
					{Label: "Chrome Extension", URL: "https://chromewebstore.google.com/detail/nedkeccobejcenjdkegndfejblbjplol", Icon: "Chrome"},
				},
				IconImage: "icons/GraphosAI.png",
				Screenshots: []string{
					"GraphosAI image/unnamed.png",
					"GraphosAI image/unnamed (1).png",
					"GraphosAI image/unnamed (2).png",
					"GraphosAI image/unnamed (3).png",
					"GraphosAI image/unnamed (5).png",
				},
				GradientFrom: "from-violet-500/30",
				GradientTo:   "to-purple-600/20",
			},
			{
				ID:          "localize-ai",
				Title:       "LocalizeAI",
				Type:        "Chrome Extension + API",
				Tagline:     "AI-powered localization testing tool for developers",
				Description: localizeDescription,
				Features: []string{
					"Live Language Toggle", "Pseudo-Localization", "Live Edit Mode",
					"AI Translation Suggestions", "Bug Report System", "JSON File Translator",
					"Google Drive Sync", "Export to Excel/JSON",
				},
				TechStack: []string{
					"Vanilla JavaScript (ES6+)", "Chrome Extension Manifest V3",
					"IndexedDB", "Node.js", "Express", "Firestore", "Vertex AI", "Google OAuth", "Google Drive API",
				},
				ArchitectureHighlights: []string{
					"MutationObserver for SPA support", "Offline-first with IndexedDB",
					"CSS isolation for third-party sites", "Client-side translation caching",
				},
				Metrics: []Metric{
					{Label: "Lines of Code", Value: "15,000+"},
					{Label: "Supported Languages", Value: "100+"},
					{Label: "Locale Translations", Value: "90+"},
				},
				Links: []Link{
					{Label: "Chrome Extension", URL: "https://chromewebstore.google.com/detail/iepjpfaadjlhedjnichldgkmfcjjcelk", Icon: "Chrome"},
				},
				IconImage: "icons/LocalizeAI.png",
				Screenshots: []string{
					"LocalizeAI image/unnamed.png",
					"LocalizeAI image/unnamed (1).png",
					"LocalizeAI image/unnamed (2).png",
					"LocalizeAI image/unnamed (3).png",
					"LocalizeAI image/unnamed (4).png",
				},
				GradientFrom: "from-cyan-500/30",
				GradientTo:   "to-blue-600/20",
			},
		},
		Skills: []SkillCategory{
			{Key: "frontend", Title: "Frontend", Skills: []Skill{
				{Name: "React/Next.js", Level: "Expert", Icon: "Atom"},
				{Name: "TypeScript", Level: "Expert", Icon: "FileCode2"},
				{Name: "Tailwind CSS", Level: "Expert", Icon: "Palette"},
				{Name: "Framer Motion", Level: "Advanced", Icon: "Sparkles"},
				{Name: "TipTap/ProseMirror", Level: "Advanced", Icon: "FileText"},
				{Name: "Zustand/Redux", Level: "Expert", Icon: "Database"},
				{Name: "TanStack Query", Level: "Advanced", Icon: "RefreshCw"},
			}},
			{Key: "backend", Title: "Backend", Skills: []Skill{
				{Name: "Node.js/Express", Level: "Expert", Icon: "Server"},
				{Name: "Firebase/Firestore", Level: "Expert", Icon: "Flame"},
				{Name: "PostgreSQL/MongoDB", Level: "Intermediate", Icon: "Database"},
				{Name: "Redis", Level: "Advanced", Icon: "Zap"},
				{Name: "WebSocket", Level: "Advanced", Icon: "Radio"},
				{Name: "REST API Design", Level: "Expert", Icon: "Network"},
			}},
			{Key: "cloud", Title: "Cloud & DevOps", Skills: []Skill{
				{Name: "Google Cloud Platform", Level: "Advanced", Icon: "Cloud"},
				{Name: "Docker", Level: "Intermediate", Icon: "Container"},
				{Name: "CI/CD", Level: "Intermediate", Icon: "GitBranch"},
				{Name: "Vercel/Firebase Hosting", Level: "Expert", Icon: "Globe"},
			}},
			{Key: "specialized", Title: "Specialized", Skills: []Skill{
				{Name: "Chrome Extension Dev", Level: "Expert", Icon: "Chrome"},
				{Name: "PWA Development", Level: "Expert", Icon: "Smartphone"},
				{Name: "AI Integration (Gemini/Vertex AI)", Level: "Advanced", Icon: "Brain"},
				{Name: "Real-time Collaboration (Yjs/WebRTC)", Level: "Advanced", Icon: "Users"},
				{Name: "i18n/l10n", Level: "Advanced", Icon: "Languages"},
			}},
		},
		Social: SocialLinks{
			GitHub:  "https://github.com/alvesoscar517-cloud",
			Discord: "https://discord.com/users/joejoe_baby",
			Email:   "alvesoscar517@gmail.com",
			Upwork:  "https://www.upwork.com/freelancers/~019c738622df4ea5b4",
		},
		Nav: []NavItem{
			{ID: "about", Label: "About"},
			{ID: "projects", Label: "Projects"},
			{ID: "skills", Label: "Skills"},
			{ID: "contact", Label: "Contact"},
		},
	}
}
