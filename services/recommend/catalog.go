package recommend

import "cinetrack/models"

// Catalog returns the built-in recommendation catalog. IDs are the external
// catalog provider's so entries convert cleanly via StaticMovie.CatalogItem.
func Catalog() []models.StaticMovie {
	return staticCatalog
}

var staticCatalog = []models.StaticMovie{
	{
		ID: 27205, Title: "Inception", Year: 2010, Rating: 8.8,
		Genres: []string{"Action", "Science Fiction", "Thriller"},
		Moods:  []string{"Mind-bending", "Tense", "Epic"},
		Language: "en", RuntimeMinutes: 148,
		Director: "Christopher Nolan",
		Cast:     []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
		Awards:   []string{"Academy Award for Best Cinematography", "Academy Award for Best Visual Effects", "Academy Award for Best Sound Editing", "Academy Award for Best Sound Mixing"},
		Overview: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
	},
	{
		ID: 155, Title: "The Dark Knight", Year: 2008, Rating: 9.0,
		Genres: []string{"Action", "Crime", "Drama"},
		Moods:  []string{"Dark", "Tense", "Epic"},
		Language: "en", RuntimeMinutes: 152,
		Director: "Christopher Nolan",
		Cast:     []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"},
		Awards:   []string{"Academy Award for Best Supporting Actor", "Academy Award for Best Sound Editing"},
		Overview: "Batman raises the stakes in his war on crime as the Joker plunges Gotham into anarchy.",
	},
	{
		ID: 496243, Title: "Parasite", Year: 2019, Rating: 8.5,
		Genres: []string{"Comedy", "Thriller", "Drama"},
		Moods:  []string{"Dark", "Tense", "Thought-provoking"},
		Language: "ko", RuntimeMinutes: 132,
		Director: "Bong Joon-ho",
		Cast:     []string{"Song Kang-ho", "Lee Sun-kyun", "Cho Yeo-jeong"},
		Awards:   []string{"Academy Award for Best Picture", "Academy Award for Best Director", "Palme d'Or"},
		Overview: "Greed and class discrimination threaten the newly formed symbiotic relationship between a wealthy family and a destitute clan.",
	},
	{
		ID: 129, Title: "Spirited Away", Year: 2001, Rating: 8.6,
		Genres: []string{"Animation", "Family", "Fantasy"},
		Moods:  []string{"Whimsical", "Heartwarming", "Mind-bending"},
		Language: "ja", RuntimeMinutes: 125,
		Director: "Hayao Miyazaki",
		Cast:     []string{"Rumi Hiiragi", "Miyu Irino", "Mari Natsuki"},
		Awards:   []string{"Academy Award for Best Animated Feature", "Golden Bear"},
		Overview: "A ten-year-old girl wanders into a world ruled by spirits and witches, where humans are changed into beasts.",
	},
	{
		ID: 680, Title: "Pulp Fiction", Year: 1994, Rating: 8.9,
		Genres: []string{"Crime", "Drama"},
		Moods:  []string{"Dark", "Funny", "Stylish"},
		Language: "en", RuntimeMinutes: 154,
		Director: "Quentin Tarantino",
		Cast:     []string{"John Travolta", "Samuel L. Jackson", "Uma Thurman"},
		Awards:   []string{"Academy Award for Best Original Screenplay", "Palme d'Or"},
		Overview: "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
	},
	{
		ID: 438631, Title: "Dune", Year: 2021, Rating: 7.9,
		Genres: []string{"Science Fiction", "Adventure"},
		Moods:  []string{"Epic", "Tense", "Stylish"},
		Language: "en", RuntimeMinutes: 155,
		Director: "Denis Villeneuve",
		Cast:     []string{"Timothée Chalamet", "Rebecca Ferguson", "Zendaya"},
		Awards:   []string{"Academy Award for Best Cinematography", "Academy Award for Best Original Score", "Academy Award for Best Visual Effects"},
		Overview: "Paul Atreides, a brilliant and gifted young man, must travel to the most dangerous planet in the universe.",
	},
	{
		ID: 19404, Title: "Dilwale Dulhania Le Jayenge", Year: 1995, Rating: 8.6,
		Genres: []string{"Comedy", "Drama", "Romance"},
		Moods:  []string{"Heartwarming", "Funny", "Romantic"},
		Language: "hi", RuntimeMinutes: 190,
		Director: "Aditya Chopra",
		Cast:     []string{"Shah Rukh Khan", "Kajol", "Amrish Puri"},
		Awards:   []string{"Filmfare Award for Best Film"},
		Overview: "Raj and Simran meet during a trip across Europe and fall in love against their families' wishes.",
	},
	{
		ID: 546554, Title: "Knives Out", Year: 2019, Rating: 7.9,
		Genres: []string{"Comedy", "Crime", "Mystery"},
		Moods:  []string{"Funny", "Twisty", "Stylish"},
		Language: "en", RuntimeMinutes: 130,
		Director: "Rian Johnson",
		Cast:     []string{"Daniel Craig", "Chris Evans", "Ana de Armas"},
		Awards:   []string{},
		Overview: "A detective investigates the death of a patriarch of an eccentric, combative family.",
	},
	{
		ID: 598, Title: "City of God", Year: 2002, Rating: 8.6,
		Genres: []string{"Crime", "Drama"},
		Moods:  []string{"Dark", "Gritty", "Thought-provoking"},
		Language: "pt", RuntimeMinutes: 130,
		Director: "Fernando Meirelles",
		Cast:     []string{"Alexandre Rodrigues", "Leandro Firmino", "Phellipe Haagensen"},
		Awards:   []string{"BAFTA Award for Best Editing"},
		Overview: "In the slums of Rio, two kids' paths diverge as one struggles to become a photographer and the other a kingpin.",
	},
	{
		ID: 76600, Title: "Avatar: The Way of Water", Year: 2022, Rating: 7.6,
		Genres: []string{"Science Fiction", "Adventure", "Action"},
		Moods:  []string{"Epic", "Heartwarming"},
		Language: "en", RuntimeMinutes: 192,
		Director: "James Cameron",
		Cast:     []string{"Sam Worthington", "Zoe Saldaña", "Sigourney Weaver"},
		Awards:   []string{"Academy Award for Best Visual Effects"},
		Overview: "Jake Sully and Neytiri must leave their home and explore the regions of Pandora to keep their family safe.",
	},
	{
		ID: 346698, Title: "Barbie", Year: 2023, Rating: 7.0,
		Genres: []string{"Comedy", "Fantasy"},
		Moods:  []string{"Funny", "Whimsical", "Thought-provoking"},
		Language: "en", RuntimeMinutes: 114,
		Director: "Greta Gerwig",
		Cast:     []string{"Margot Robbie", "Ryan Gosling", "America Ferrera"},
		Awards:   []string{"Academy Award for Best Original Song"},
		Overview: "Barbie suffers a crisis that leads her to question her world and her existence.",
	},
	{
		ID: 872585, Title: "Oppenheimer", Year: 2023, Rating: 8.1,
		Genres: []string{"Drama", "History"},
		Moods:  []string{"Tense", "Thought-provoking", "Epic"},
		Language: "en", RuntimeMinutes: 180,
		Director: "Christopher Nolan",
		Cast:     []string{"Cillian Murphy", "Emily Blunt", "Robert Downey Jr."},
		Awards:   []string{"Academy Award for Best Picture", "Academy Award for Best Director", "Academy Award for Best Actor"},
		Overview: "The story of J. Robert Oppenheimer's role in the development of the atomic bomb.",
	},
	{
		ID: 4935, Title: "Howl's Moving Castle", Year: 2004, Rating: 8.4,
		Genres: []string{"Animation", "Fantasy", "Romance"},
		Moods:  []string{"Whimsical", "Heartwarming", "Romantic"},
		Language: "ja", RuntimeMinutes: 119,
		Director: "Hayao Miyazaki",
		Cast:     []string{"Chieko Baisho", "Takuya Kimura", "Akihiro Miwa"},
		Awards:   []string{},
		Overview: "Sophie, cursed into an old woman's body, seeks refuge in the walking castle of the wizard Howl.",
	},
	{
		ID: 313369, Title: "La La Land", Year: 2016, Rating: 7.9,
		Genres: []string{"Comedy", "Drama", "Romance", "Music"},
		Moods:  []string{"Romantic", "Stylish", "Bittersweet"},
		Language: "en", RuntimeMinutes: 128,
		Director: "Damien Chazelle",
		Cast:     []string{"Ryan Gosling", "Emma Stone", "John Legend"},
		Awards:   []string{"Academy Award for Best Director", "Academy Award for Best Actress", "Academy Award for Best Original Score"},
		Overview: "An aspiring actress and a dedicated jazz musician chase their dreams in Los Angeles.",
	},
	{
		ID: 603, Title: "The Matrix", Year: 1999, Rating: 8.7,
		Genres: []string{"Action", "Science Fiction"},
		Moods:  []string{"Mind-bending", "Stylish", "Tense"},
		Language: "en", RuntimeMinutes: 136,
		Director: "Lana Wachowski",
		Cast:     []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		Awards:   []string{"Academy Award for Best Visual Effects", "Academy Award for Best Film Editing", "Academy Award for Best Sound", "Academy Award for Best Sound Effects Editing"},
		Overview: "A computer hacker learns the true nature of his reality and his role in the war against its controllers.",
	},
	{
		ID: 120467, Title: "The Grand Budapest Hotel", Year: 2014, Rating: 8.1,
		Genres: []string{"Comedy", "Drama"},
		Moods:  []string{"Whimsical", "Funny", "Stylish"},
		Language: "en", RuntimeMinutes: 99,
		Director: "Wes Anderson",
		Cast:     []string{"Ralph Fiennes", "Tony Revolori", "Saoirse Ronan"},
		Awards:   []string{"Academy Award for Best Production Design", "Academy Award for Best Costume Design", "Academy Award for Best Makeup", "Academy Award for Best Original Score"},
		Overview: "The adventures of a legendary concierge and his trusted lobby boy at a famous European hotel between the wars.",
	},
	{
		ID: 361743, Title: "Top Gun: Maverick", Year: 2022, Rating: 8.2,
		Genres: []string{"Action", "Drama"},
		Moods:  []string{"Epic", "Tense", "Heartwarming"},
		Language: "en", RuntimeMinutes: 131,
		Director: "Joseph Kosinski",
		Cast:     []string{"Tom Cruise", "Miles Teller", "Jennifer Connelly"},
		Awards:   []string{"Academy Award for Best Sound"},
		Overview: "After thirty years of service, Maverick confronts his past while training a new squad of graduates.",
	},
	{
		ID: 77338, Title: "The Intouchables", Year: 2011, Rating: 8.3,
		Genres: []string{"Comedy", "Drama"},
		Moods:  []string{"Heartwarming", "Funny"},
		Language: "fr", RuntimeMinutes: 112,
		Director: "Olivier Nakache",
		Cast:     []string{"François Cluzet", "Omar Sy"},
		Awards:   []string{"César Award for Best Actor"},
		Overview: "A quadriplegic aristocrat hires a young man from the projects to be his caregiver.",
	},
	{
		ID: 634649, Title: "Spider-Man: No Way Home", Year: 2021, Rating: 8.0,
		Genres: []string{"Action", "Adventure", "Science Fiction"},
		Moods:  []string{"Epic", "Funny", "Heartwarming"},
		Language: "en", RuntimeMinutes: 148,
		Director: "Jon Watts",
		Cast:     []string{"Tom Holland", "Zendaya", "Benedict Cumberbatch"},
		Awards:   []string{},
		Overview: "Peter Parker asks Doctor Strange for help when his identity is revealed, unleashing the multiverse.",
	},
	{
		ID: 453, Title: "A Beautiful Mind", Year: 2001, Rating: 8.2,
		Genres: []string{"Drama", "Romance"},
		Moods:  []string{"Thought-provoking", "Heartwarming", "Tense"},
		Language: "en", RuntimeMinutes: 135,
		Director: "Ron Howard",
		Cast:     []string{"Russell Crowe", "Jennifer Connelly", "Ed Harris"},
		Awards:   []string{"Academy Award for Best Picture", "Academy Award for Best Director", "Academy Award for Best Supporting Actress", "Academy Award for Best Adapted Screenplay"},
		Overview: "After a brilliant but asocial mathematician accepts secret work in cryptography, his life takes a nightmarish turn.",
	},
}
