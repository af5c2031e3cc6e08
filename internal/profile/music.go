package profile

import "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"

var musicProfiles = map[entity.Category]Music{
	entity.CategoryHappy: {
		Genres: []string{
			"Pop",
			"Dance",
			"Electronic",
			"Upbeat Rock",
			"Reggae",
			"Funk",
			"Disco",
		},
		Tracks: []string{
			"Happy - Pharrell Williams",
			"Can't Stop the Feeling - Justin Timberlake",
			"Good as Hell - Lizzo",
			"Uptown Funk - Bruno Mars",
			"Walking on Sunshine - Katrina & The Waves",
			"I Gotta Feeling - Black Eyed Peas",
			"Dancing Queen - ABBA",
			"Mr. Blue Sky - ELO",
			"Good Vibrations - The Beach Boys",
			"Celebration - Kool & The Gang",
			"Don't Stop Believin' - Journey",
			"Livin' on a Prayer - Bon Jovi",
			"Billie Jean - Michael Jackson",
			"September - Earth, Wind & Fire",
			"Superstition - Stevie Wonder",
			"Shut Up and Dance - Walk the Moon",
			"Sugar - Maroon 5",
			"24K Magic - Bruno Mars",
			"Shake It Off - Taylor Swift",
			"Happy Together - The Turtles",
			"I'm Gonna Be (500 Miles) - The Proclaimers",
			"Hey Ya! - OutKast",
			"Uprising - Muse",
			"Don't Stop Me Now - Queen",
			"We Will Rock You - Queen",
		},
		Characteristics: "Energetic, Fast beats, Major keys, Uplifting lyrics, Danceable rhythms",
		PrimaryGenres:   []string{"Pop", "Dance", "Upbeat Rock"},
		SecondaryGenres: []string{"Funk", "Disco", "Reggae"},
		TempoRange:      "120-180 BPM",
		EnergyLevel:     "high",
		MoodCharacteristics: []string{
			"joyful",
			"celebratory",
			"uplifting",
			"energetic",
		},
		Instruments: []string{
			"guitar",
			"drums",
			"bass",
			"synth",
			"brass",
		},
		RecommendedFor: []string{
			"social activities",
			"exercise",
			"celebrations",
			"motivation",
		},
		ArtistKeywords: []string{
			"pharell",
			"mars",
			"abba",
			"journey",
			"jackson",
			"timberlake",
		},
		Reason: "Selected upbeat tracks with 120-180 BPM tempo and high energy to match your joyful mood. Perfect for social activities, exercise.",
		StudyBenefits: []string{
			"Increased creativity and problem-solving",
			"Better memory retention",
			"Enhanced motivation for challenging tasks",
		},
	},
	entity.CategorySad: {
		Genres: []string{
			"Acoustic",
			"Soft Rock",
			"Indie",
			"Classical",
			"Blues",
			"Folk",
		},
		Tracks: []string{
			"Someone Like You - Adele",
			"Mad World - Gary Jules",
			"Hurt - Johnny Cash",
			"Black - Pearl Jam",
			"Tears in Heaven - Eric Clapton",
			"The Sound of Silence - Simon & Garfunkel",
			"Everybody Hurts - R.E.M.",
			"Breathe Me - Sia",
			"Skinny Love - Bon Iver",
			"Hallelujah - Jeff Buckley",
			"Yesterday - The Beatles",
			"House of the Rising Sun - The Animals",
			"Nothing Compares 2 U - Sinead O'Connor",
			"Tears Dry on Their Own - Amy Winehouse",
			"Creep - Radiohead",
			"The Night We Met - Lord Huron",
			"Fix You - Coldplay",
			"Someone You Loved - Lewis Capaldi",
			"When I Was Your Man - Bruno Mars",
			"Let It Be - The Beatles",
			"Blackbird - The Beatles",
			"The Times They Are A-Changin' - Bob Dylan",
			"American Pie - Don McLean",
			"Imagine - John Lennon",
			"Strange Fruit - Billie Holiday",
		},
		Characteristics: "Slow tempo, Minor keys, Emotional vocals, Reflective lyrics, Melancholic melodies",
		PrimaryGenres:   []string{"Acoustic", "Soft Rock", "Indie"},
		SecondaryGenres: []string{"Blues", "Folk", "Alternative"},
		TempoRange:      "60-100 BPM",
		EnergyLevel:     "low",
		MoodCharacteristics: []string{
			"melancholic",
			"introspective",
			"emotional",
			"reflective",
		},
		Instruments: []string{
			"acoustic guitar",
			"piano",
			"strings",
			"soft percussion",
		},
		RecommendedFor: []string{
			"emotional processing",
			"reflection",
			"comfort",
			"healing",
		},
		ArtistKeywords: []string{
			"adele",
			"cash",
			"clapton",
			"radiohead",
			"coldplay",
			"beatles",
		},
		Reason: "Gentle, emotional tracks with 60-100 BPM pacing using Acoustic, Soft Rock elements for reflective comfort.",
		StudyBenefits: []string{
			"Improved focus through emotional processing",
			"Better analytical thinking",
			"Increased attention to detail",
		},
	},
	entity.CategoryStressed: {
		Genres: []string{
			"Lo-fi",
			"Ambient",
			"Chill",
			"Classical",
			"Nature Sounds",
			"Jazz",
			"Bossa Nova",
		},
		Tracks: []string{
			"Weightless - Marconi Union",
			"Clair de Lune - Debussy",
			"Aqueous Transmission - Incubus",
			"Porcelain - Moby",
			"Teardrop - Massive Attack",
			"River - Joni Mitchell",
			"Mad Rush - Philip Glass",
			"Spiegel im Spiegel - Arvo Pärt",
			"Gymnopédie No.1 - Erik Satie",
			"Ambient 1 - Brian Eno",
			"The Köln Concert - Keith Jarrett",
			"In a Silent Way - Miles Davis",
			"Kind of Blue - Miles Davis",
			"Moon Safari - Air",
			"Music Has the Right to Children - Boards of Canada",
			"Selected Ambient Works - Aphex Twin",
			"Discreet Music - Brian Eno",
			"The Disintegration Loops - William Basinski",
			"Music for Airports - Brian Eno",
			"Lofi Girl - Chillhop Radio",
			"Jazzhop - Nujabes",
			"Wave - Antonio Carlos Jobim",
			"Corcovado - Stan Getz & João Gilberto",
			"Saudade - João Gilberto",
			"Meditative Mind - Chinmaya Dunster",
		},
		Characteristics: "Calming, Slow rhythm, Minimal lyrics, Stress-reducing, Meditative qualities",
		PrimaryGenres:   []string{"Ambient", "Classical", "Lo-fi"},
		SecondaryGenres: []string{"Jazz", "New Age", "Bossa Nova"},
		TempoRange:      "50-90 BPM",
		EnergyLevel:     "very_low",
		MoodCharacteristics: []string{
			"calming",
			"soothing",
			"meditative",
			"peaceful",
		},
		Instruments: []string{
			"piano",
			"strings",
			"nature sounds",
			"soft synth",
			"wind instruments",
		},
		RecommendedFor: []string{
			"stress relief",
			"concentration",
			"relaxation",
			"meditation",
		},
		ArtistKeywords: []string{
			"einaudi",
			"glass",
			"satie",
			"enigma",
			"eno",
			"union",
		},
		Reason: "Calming selections with 50-90 BPM tempo and very_low energy using Ambient, Classical for stress reduction.",
		StudyBenefits: []string{
			"Reduced cortisol levels",
			"Improved concentration",
			"Better information processing",
		},
	},
	entity.CategoryNeutral: {
		Genres: []string{
			"Instrumental",
			"Focus Music",
			"Ambient",
			"Classical",
			"Jazz",
			"Electronic",
		},
		Tracks: []string{
			"Ludovico Einaudi - Nuvole Bianche",
			"Max Richter - On The Nature of Daylight",
			"Ólafur Arnalds - Near Light",
			"Nils Frahm - Says",
			"GoGo Penguin - Hopopono",
			"Kiasmos - Blurred EP",
			"Emancipator - Soon It Will Be Cold Enough",
			"Bonobo - Kong",
			"Tycho - A Walk",
			"Boards of Canada - Roygbiv",
			"The Piano Guys - Beethoven's 5 Secrets",
			"River Flows in You - Yiruma",
			"Comptine d'un autre été - Yann Tiersen",
			"Now We Are Free - Hans Zimmer & Lisa Gerrard",
			"Time - Hans Zimmer",
			"The Breaking of the Fellowship - Howard Shore",
			"My Name is Lincoln - Steve Jablonsky",
			"Light of the Seven - Ramin Djawadi",
			"Hurt - Johnny Cash (Instrumental)",
			"Blackbird - Paul McCartney",
			"Black Coffee - Peggy Lee",
			"What a Wonderful World - Louis Armstrong",
			"Feeling Good - Nina Simone",
			"At Last - Etta James",
			"Summertime - Ella Fitzgerald",
		},
		Characteristics: "Balanced tempo, Instrumental focus, Concentration-friendly, Versatile moods",
		PrimaryGenres:   []string{"Instrumental", "Jazz", "Classical"},
		SecondaryGenres: []string{"Electronic", "Ambient", "World Music"},
		TempoRange:      "70-120 BPM",
		EnergyLevel:     "medium",
		MoodCharacteristics: []string{
			"balanced",
			"focused",
			"versatile",
			"professional",
		},
		Instruments: []string{
			"piano",
			"jazz instruments",
			"orchestral",
			"electronic",
			"acoustic",
		},
		RecommendedFor: []string{
			"work",
			"study",
			"background music",
			"concentration",
		},
		Reason: "Balanced instrumental tracks with 70-120 BPM rhythm providing balanced, focused atmosphere for focused work.",
		StudyBenefits: []string{
			"Optimal focus state",
			"Balanced cognitive performance",
			"Sustained attention span",
		},
	},
	entity.CategoryExcited: {
		Genres: []string{
			"Electronic Dance",
			"Pop Rock",
			"Hip Hop",
			"R&B",
			"Synthwave",
		},
		Tracks: []string{
			"Levels - Avicii",
			"Wake Me Up - Avicii",
			"Animals - Martin Garrix",
			"Tsunami - DVBBS & Borgeous",
			"Boneless - Steve Aoki, Chris Lake & Tujamo",
			"Turn Down for What - DJ Snake & Lil Jon",
			"Lean On - Major Lazer & DJ Snake",
			"This Girl - Kungs vs Cookin' on 3 Burners",
			"Seve - Tez Cadey",
			"Fast Car - Jonas Blue ft. Dakota",
			"Riptide - Vance Joy",
			"Ho Hey - The Lumineers",
			"Home - Phillip Phillips",
			"Pompeii - Bastille",
			"Take Me to Church - Hozier",
			"Royals - Lorde",
			"Radioactive - Imagine Dragons",
			"Demons - Imagine Dragons",
			"Centuries - Fall Out Boy",
			"The Phoenix - Fall Out Boy",
		},
		Characteristics: "High energy, Fast tempo, Motivational, Danceable, Uplifting",
		PrimaryGenres:   []string{"Electronic Dance", "Pop Rock", "Hip Hop"},
		SecondaryGenres: []string{"Synthwave", "R&B", "Indie Rock"},
		TempoRange:      "130-200 BPM",
		EnergyLevel:     "very_high",
		MoodCharacteristics: []string{
			"enthusiastic",
			"adventurous",
			"dynamic",
			"intense",
		},
		Instruments: []string{
			"electronic synth",
			"heavy drums",
			"electric guitar",
			"bass drops",
		},
		RecommendedFor: []string{
			"high energy tasks",
			"creative work",
			"social events",
			"motivation",
		},
		ArtistKeywords: []string{
			"avicii",
			"garrix",
			"dragons",
			"mars",
			"jovi",
		},
		Reason: "High-energy selections with 130-200 BPM rhythm featuring Electronic Dance, Pop Rock styles to fuel your enthusiastic state.",
	},
	entity.CategoryCalm: {
		Genres: []string{
			"New Age",
			"World Music",
			"Acoustic",
			"Nature Sounds",
			"Meditation",
		},
		Tracks: []string{
			"Weightless - Marconi Union",
			"The Water Garden - Oliver Serano-Alve",
			"Butterfly - Michael Olatuja",
			"Weightless Part 1 - Marconi Union",
			"Weightless Part 2 - Marconi Union",
			"Weightless Part 3 - Marconi Union",
			"Weightless Part 4 - Marconi Union",
			"Música Callada - Federico Mompou",
			"The Heart Asks Pleasure First - Michael Nyman",
			"Adagio for Strings - Samuel Barber",
			"Gabriel's Oboe - Ennio Morricone",
			"The Eternal Vow - Yanni",
			"Within You - William Joseph",
			"River Flows in You - Yiruma",
			"Kiss the Rain - Yiruma",
			"May Be - Yiruma",
			"Love Hurts - Yiruma",
			"Wait There - Yiruma",
			"Do You? - Yiruma",
			"Sky - Yiruma",
		},
		Characteristics: "Peaceful, Slow tempo, Meditative, Relaxing, Nature-inspired",
		PrimaryGenres:   []string{"New Age", "Meditation", "Nature Sounds"},
		SecondaryGenres: []string{"World Music", "Classical Piano", "Ambient"},
		TempoRange:      "40-70 BPM",
		EnergyLevel:     "very_low",
		MoodCharacteristics: []string{
			"peaceful",
			"serene",
			"tranquil",
			"healing",
		},
		Instruments: []string{
			"piano",
			"nature sounds",
			"soft strings",
			"flute",
			"harp",
		},
		RecommendedFor: []string{
			"meditation",
			"sleep",
			"healing",
			"deep relaxation",
		},
		ArtistKeywords: []string{
			"yiruma",
			"einaudi",
			"morricone",
			"yanni",
			"barber",
		},
		Reason: "Peaceful compositions with 40-70 BPM pacing featuring New Age, Meditation for deep relaxation and meditation.",
	},
	entity.CategoryFocused: {
		Genres: []string{
			"Classical",
			"Instrumental",
			"Lo-fi",
			"Concentration Music",
			"Baroque",
		},
		Tracks: []string{
			"The Well-Tempered Clavier - J.S. Bach",
			"Goldberg Variations - J.S. Bach",
			"Piano Sonata No. 14 (Moonlight) - Beethoven",
			"Für Elise - Beethoven",
			"Nocturnes - Chopin",
			"Études - Chopin",
			"The Seasons - Tchaikovsky",
			"Symphony No. 9 - Beethoven",
			"Brandenburg Concertos - Bach",
			"Concerto for Two Violins - Bach",
			"Violin Concerto - Beethoven",
			"Piano Concerto No. 21 - Mozart",
			"Symphony No. 40 - Mozart",
			"The Nutcracker Suite - Tchaikovsky",
			"Swan Lake - Tchaikovsky",
			"Carmen Suite - Bizet",
			"Boléro - Ravel",
			"Clair de Lune - Debussy",
			"Gymnopédie - Satie",
			"Gnossienne - Satie",
		},
		Characteristics: "Instrumental, Complex compositions, Concentration-enhancing, Classical structure",
		PrimaryGenres:   []string{"Classical", "Instrumental", "Baroque"},
		SecondaryGenres: []string{"Lo-fi", "Concentration Music", "Minimalist"},
		TempoRange:      "60-100 BPM",
		EnergyLevel:     "medium",
		MoodCharacteristics: []string{
			"concentrated",
			"structured",
			"analytical",
			"disciplined",
		},
		Instruments: []string{
			"classical instruments",
			"piano",
			"orchestral",
			"minimal electronic",
		},
		RecommendedFor: []string{
			"deep work",
			"studying",
			"analytical tasks",
			"concentration",
		},
		ArtistKeywords: []string{
			"bach",
			"beethoven",
			"mozart",
			"chopin",
			"tchaikovsky",
		},
		Reason: "Structured instrumental pieces with 60-100 BPM rhythm using Classical, Instrumental to enhance concentration.",
	},
	entity.CategoryTired: {
		Genres: []string{
			"Ambient",
			"Sleep Music",
			"Nature Sounds",
			"Soft Jazz",
			"Binaural",
		},
		Tracks: []string{
			"Sleep - Eric Whitacre",
			"The Night - Ludovico Einaudi",
			"I Giorni - Ludovico Einaudi",
			"Divenire - Ludovico Einaudi",
			"Strombre - Ludovico Einaudi",
			"Waterways - Ludovico Einaudi",
			"Elegy for the Arctic - Ludovico Einaudi",
			"Night - Ludovico Einaudi",
			"Brothers - Ludovico Einaudi",
			"Experience - Ludovico Einaudi",
			"Whispers - Ludovico Einaudi",
			"Burning - Ludovico Einaudi",
			"Circle Song - Ludovico Einaudi",
			"Glimpse - Ludovico Einaudi",
			"Monday - Ludovico Einaudi",
			"Dancer - Ludovico Einaudi",
			"Walk - Ludovico Einaudi",
			"A Sense of Symmetry - Ludovico Einaudi",
			"Underwood - Ludovico Einaudi",
			"Reverie - Ludovico Einaudi",
		},
		Characteristics: "Soft, Gentle, Sleep-inducing, Ambient textures, Slow pacing",
		PrimaryGenres:   []string{"Ambient", "Sleep Music", "Soft Jazz"},
		SecondaryGenres: []string{"Binaural", "Nature Sounds", "Classical"},
		TempoRange:      "30-60 BPM",
		EnergyLevel:     "very_low",
		MoodCharacteristics: []string{
			"sleepy",
			"dreamy",
			"gentle",
			"lulling",
		},
		Instruments: []string{
			"soft piano",
			"ambient textures",
			"nature sounds",
			"gentle strings",
		},
		RecommendedFor: []string{
			"sleep",
			"rest",
			"recovery",
			"gentle relaxation",
		},
		ArtistKeywords: []string{"whitacre", "einaudi", "whisper"},
		Reason:         "Gentle ambient tracks with 30-60 BPM pacing using Ambient, Sleep Music for restful recovery.",
	},
}

var fallbackMusic = Music{
	Genres: []string{"General"},
	Tracks: []string{
		"Lofi Hip Hop Radio - 24/7 Study Beats",
		"Nature Sounds - Forest Rain",
		"Classical Focus - Bach & Mozart",
		"Ambient Chill - Peaceful Vibes",
	},
	Characteristics:     "General mood music for various activities",
	PrimaryGenres:       []string{"General"},
	TempoRange:          "70-120 BPM",
	EnergyLevel:         "medium",
	MoodCharacteristics: []string{"versatile", "balanced"},
	Instruments:         []string{"various"},
	RecommendedFor:      []string{"general activities"},
	Reason:              "General music selection for balanced mood support",
	StudyBenefits:       []string{"General mood improvement", "Enhanced focus"},
}
