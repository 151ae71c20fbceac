package domain

// FallbackProjects is the fixed sample set the public presenter shows while
// the catalog is empty or the first snapshot has not resolved yet. It is
// display-only and is never written back to the store.
func FallbackProjects() []Project {
	return []Project{
		{
			Title:       "Flight Price Predictor",
			Description: "A machine learning application that predicts flight ticket prices based on various parameters using regression techniques.",
			ImageURL:    "https://c4.wallpaperflare.com/wallpaper/690/636/859/flight-takeoff-hd-airport-runway-wallpaper-preview.jpg",
			Tags:        []string{"python", "scikit-learn", "matplotlib", "Pandas"},
			LiveURL:     "https://skyprice-predictor-m6qk.vercel.app/",
		},
		{
			Title:       "Beverages Order Platform",
			Description: "A full-stack website for seamless juice orders and efficient shop management with user-friendly design.",
			ImageURL:    "https://media.istockphoto.com/id/504754220/photo/cocktails.jpg?s=612x612&w=0&k=20&c=NxIzGT-LbUS0BAPoCMDY3mEp96AnIxxldbWmFMeeD-A=",
			Tags:        []string{"HTML", "CSS", "Javascript", "Node.js"},
			LiveURL:     "https://squeeze-in-truffle-43677.netlify.app/",
		},
		{
			Title:       "Ignite Gym Website",
			Description: "A full-stack fitness platform for gym memberships, workout tracking, and user management with responsive UI.",
			ImageURL:    "https://t4.ftcdn.net/jpg/03/17/72/47/360_F_317724775_qHtWjnT8YbRdFNIuq5PWsSYypRhOmalS.jpg",
			Tags:        []string{"HTML", "CSS", "Javascript", "Node.js"},
			LiveURL:     "https://ignite-prime-experience-860untq97.vercel.app",
		},
		{
			Title:       "Portfolio Website",
			Description: "A personal portfolio website to showcase projects, skills, and experience with smooth navigation and responsive design.",
			ImageURL:    "https://assets-global.website-files.com/5e39e095596498a8b9624af1/5f6e93d250a6d04f4eae9f02_Backgrounds-WFU-thumbnail-(size).jpg",
			Tags:        []string{"HTML", "CSS", "JS", "React"},
			GithubURL:   "#",
			LiveURL:     "#",
		},
	}
}
