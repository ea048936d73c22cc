package seed

import "github.com/pytechdigital/content-api/internal/catalog"

// Built-in seed sets for the four reference collections. Versioned with the
// software; not editable at runtime. Each function returns a fresh slice so
// callers can hand it to a store without aliasing.

func Services() []catalog.Service {
	return []catalog.Service{
		{
			ID:               "1",
			Name:             "Branding Services",
			Slug:             "branding-services",
			Description:      "Transform your business identity with our comprehensive branding services. We create memorable brand experiences that resonate with your target audience and set you apart from competitors.",
			ShortDescription: "Build a powerful brand identity that stands out",
			Features: []string{
				"Logo Design & Brand Identity",
				"Brand Strategy & Positioning",
				"Visual Identity Systems",
				"Brand Guidelines & Standards",
				"Marketing Collateral Design",
				"Brand Messaging & Voice",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Discovery", Description: "Understand your business, goals, and target audience"},
				{Step: 2, Title: "Strategy", Description: "Develop brand positioning and messaging framework"},
				{Step: 3, Title: "Design", Description: "Create visual identity and brand assets"},
				{Step: 4, Title: "Implementation", Description: "Apply branding across all touchpoints"},
				{Step: 5, Title: "Guidelines", Description: "Deliver comprehensive brand guidelines"},
			},
			Keywords: []string{"branding", "brand identity", "logo design", "visual identity"},
		},
		{
			ID:               "2",
			Name:             "Website Design",
			Slug:             "website-design",
			Description:      "Create stunning, high-performing websites that drive results. Our expert team designs responsive, user-friendly websites optimized for conversions and search engines.",
			ShortDescription: "Professional websites that convert visitors into customers",
			Features: []string{
				"Custom Website Design",
				"Responsive Mobile Design",
				"E-commerce Development",
				"CMS Integration",
				"SEO-Optimized Structure",
				"Fast Loading Performance",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Consultation", Description: "Discuss your requirements and objectives"},
				{Step: 2, Title: "Design", Description: "Create mockups and design concepts"},
				{Step: 3, Title: "Development", Description: "Build responsive, functional website"},
				{Step: 4, Title: "Testing", Description: "Quality assurance and cross-browser testing"},
				{Step: 5, Title: "Launch", Description: "Deploy and provide ongoing support"},
			},
			Keywords: []string{"website design", "web development", "responsive design", "ecommerce"},
		},
		{
			ID:               "3",
			Name:             "App Development",
			Slug:             "app-development",
			Description:      "Build powerful mobile applications that engage users and grow your business. We develop native and cross-platform apps with exceptional user experience.",
			ShortDescription: "Native and cross-platform mobile apps that users love",
			Features: []string{
				"iOS App Development",
				"Android App Development",
				"Cross-Platform Solutions",
				"UI/UX Design",
				"App Store Optimization",
				"Maintenance & Support",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Planning", Description: "Define features and technical requirements"},
				{Step: 2, Title: "Design", Description: "Create intuitive UI/UX designs"},
				{Step: 3, Title: "Development", Description: "Build app with latest technologies"},
				{Step: 4, Title: "Testing", Description: "Rigorous testing across devices"},
				{Step: 5, Title: "Deployment", Description: "Launch on app stores with ongoing support"},
			},
			Keywords: []string{"app development", "mobile app", "ios development", "android development"},
		},
		{
			ID:               "4",
			Name:             "Digital Marketing Services",
			Slug:             "digital-marketing-services",
			Description:      "Accelerate your online growth with data-driven digital marketing strategies. We help businesses reach their target audience and maximize ROI through comprehensive digital campaigns.",
			ShortDescription: "Data-driven marketing strategies that deliver results",
			Features: []string{
				"Search Engine Optimization (SEO)",
				"Pay-Per-Click Advertising (PPC)",
				"Social Media Marketing",
				"Content Marketing",
				"Email Marketing Campaigns",
				"Analytics & Reporting",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Audit", Description: "Analyze current digital presence"},
				{Step: 2, Title: "Strategy", Description: "Develop customized marketing plan"},
				{Step: 3, Title: "Execution", Description: "Implement campaigns across channels"},
				{Step: 4, Title: "Optimization", Description: "Continuously improve performance"},
				{Step: 5, Title: "Reporting", Description: "Provide detailed analytics and insights"},
			},
			Keywords: []string{"digital marketing", "seo", "ppc", "social media marketing"},
		},
		{
			ID:               "5",
			Name:             "Enquiry Generation Services",
			Slug:             "enquiry-generation-services",
			Description:      "Generate high-quality leads that convert into customers. Our targeted enquiry generation strategies help businesses fill their sales pipeline with qualified prospects.",
			ShortDescription: "Qualified leads that turn into paying customers",
			Features: []string{
				"Lead Generation Campaigns",
				"Landing Page Optimization",
				"Conversion Rate Optimization",
				"Lead Nurturing Systems",
				"Multi-Channel Outreach",
				"CRM Integration",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Target", Description: "Identify ideal customer profile"},
				{Step: 2, Title: "Attract", Description: "Create compelling lead magnets"},
				{Step: 3, Title: "Capture", Description: "Optimize conversion touchpoints"},
				{Step: 4, Title: "Nurture", Description: "Engage leads with relevant content"},
				{Step: 5, Title: "Convert", Description: "Close deals with qualified prospects"},
			},
			Keywords: []string{"lead generation", "enquiry generation", "conversion optimization", "sales funnel"},
		},
		{
			ID:               "6",
			Name:             "Search Engine Optimization",
			Slug:             "search-engine-optimization",
			Description:      "Dominate search results and drive organic traffic with our expert SEO services. We optimize your website to rank higher on Google and other search engines, bringing qualified traffic to your business.",
			ShortDescription: "Rank higher on Google and drive organic traffic",
			Features: []string{
				"Technical SEO Audit",
				"On-Page Optimization",
				"Off-Page SEO & Link Building",
				"Local SEO",
				"Keyword Research & Strategy",
				"SEO Performance Reporting",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Audit", Description: "Comprehensive SEO audit of your website"},
				{Step: 2, Title: "Research", Description: "Keyword research and competitor analysis"},
				{Step: 3, Title: "Optimize", Description: "Implement on-page and technical SEO"},
				{Step: 4, Title: "Build", Description: "Quality link building and content strategy"},
				{Step: 5, Title: "Monitor", Description: "Track rankings and optimize continuously"},
			},
			Keywords: []string{"seo", "search engine optimization", "google ranking", "organic traffic"},
		},
		{
			ID:               "7",
			Name:             "App Marketing",
			Slug:             "app-marketing",
			Description:      "Boost your app downloads and user engagement with comprehensive app marketing strategies. From app store optimization to user acquisition campaigns, we help your app succeed.",
			ShortDescription: "Drive app downloads and user engagement",
			Features: []string{
				"App Store Optimization (ASO)",
				"User Acquisition Campaigns",
				"In-App Marketing",
				"App Analytics & Insights",
				"Retention Strategies",
				"Influencer Marketing",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Analysis", Description: "Analyze app market and competitors"},
				{Step: 2, Title: "Optimize", Description: "ASO for app stores"},
				{Step: 3, Title: "Launch", Description: "User acquisition campaigns"},
				{Step: 4, Title: "Engage", Description: "In-app engagement strategies"},
				{Step: 5, Title: "Retain", Description: "User retention and re-engagement"},
			},
			Keywords: []string{"app marketing", "aso", "user acquisition", "app downloads"},
		},
		{
			ID:               "8",
			Name:             "Content Marketing",
			Slug:             "content-marketing",
			Description:      "Engage your audience with compelling content that drives results. Our content marketing services help you build authority, generate leads, and grow your business through strategic content.",
			ShortDescription: "Strategic content that engages and converts",
			Features: []string{
				"Content Strategy Development",
				"Blog Writing & Management",
				"Video Content Creation",
				"Infographics & Visual Content",
				"Social Media Content",
				"Content Distribution",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Strategy", Description: "Develop content marketing strategy"},
				{Step: 2, Title: "Create", Description: "Produce high-quality content"},
				{Step: 3, Title: "Optimize", Description: "SEO optimization for content"},
				{Step: 4, Title: "Distribute", Description: "Multi-channel content distribution"},
				{Step: 5, Title: "Measure", Description: "Track performance and refine"},
			},
			Keywords: []string{"content marketing", "blog writing", "content strategy", "video content"},
		},
		{
			ID:               "9",
			Name:             "PPC/Paid Marketing",
			Slug:             "ppc-paid-marketing",
			Description:      "Maximize ROI with targeted paid advertising campaigns. Our PPC experts manage Google Ads, Facebook Ads, and other paid channels to drive qualified traffic and conversions.",
			ShortDescription: "Targeted paid ads that deliver high ROI",
			Features: []string{
				"Google Ads Management",
				"Facebook & Instagram Ads",
				"LinkedIn Advertising",
				"Display & Remarketing",
				"Shopping Ads",
				"Campaign Optimization",
			},
			ProcessSteps: []catalog.ProcessStep{
				{Step: 1, Title: "Research", Description: "Audience and keyword research"},
				{Step: 2, Title: "Setup", Description: "Campaign structure and ad creation"},
				{Step: 3, Title: "Launch", Description: "Launch campaigns across platforms"},
				{Step: 4, Title: "Monitor", Description: "Real-time monitoring and adjustments"},
				{Step: 5, Title: "Optimize", Description: "Continuous optimization for ROI"},
			},
			Keywords: []string{"ppc", "google ads", "paid marketing", "facebook ads"},
		},
	}
}

func Cities() []catalog.City {
	return []catalog.City{
		// metros
		{ID: "1", Name: "Delhi", Slug: "delhi", State: "Delhi", Tier: catalog.TierMetro, Areas: []string{"Connaught Place", "Karol Bagh", "Nehru Place", "Dwarka", "Rohini"}},
		{ID: "2", Name: "Mumbai", Slug: "mumbai", State: "Maharashtra", Tier: catalog.TierMetro, Areas: []string{"Andheri", "Bandra", "Powai", "Navi Mumbai", "Thane"}},
		{ID: "3", Name: "Bangalore", Slug: "bangalore", State: "Karnataka", Tier: catalog.TierMetro, Areas: []string{"Koramangala", "Whitefield", "Indiranagar", "Electronic City", "HSR Layout"}},
		{ID: "4", Name: "Hyderabad", Slug: "hyderabad", State: "Telangana", Tier: catalog.TierMetro, Areas: []string{"Hitech City", "Gachibowli", "Madhapur", "Banjara Hills", "Secunderabad"}},
		{ID: "5", Name: "Chennai", Slug: "chennai", State: "Tamil Nadu", Tier: catalog.TierMetro, Areas: []string{"T Nagar", "Anna Nagar", "Velachery", "OMR", "Porur"}},
		{ID: "6", Name: "Kolkata", Slug: "kolkata", State: "West Bengal", Tier: catalog.TierMetro, Areas: []string{"Salt Lake", "Park Street", "Ballygunge", "New Town", "Howrah"}},
		{ID: "7", Name: "Pune", Slug: "pune", State: "Maharashtra", Tier: catalog.TierMetro, Areas: []string{"Hinjewadi", "Kothrud", "Viman Nagar", "Wakad", "Baner"}},

		// state capitals and major cities
		{ID: "8", Name: "Noida", Slug: "noida", State: "Uttar Pradesh", Tier: catalog.TierOne, Areas: []string{"Sector 62", "Sector 18", "Greater Noida", "Sector 142", "Film City"}},
		{ID: "9", Name: "Gurgaon", Slug: "gurgaon", State: "Haryana", Tier: catalog.TierOne, Areas: []string{"Cyber City", "DLF Phase 1", "Golf Course Road", "Sohna Road", "MG Road"}},
		{ID: "10", Name: "Jaipur", Slug: "jaipur", State: "Rajasthan", Tier: catalog.TierOne, Areas: []string{"Malviya Nagar", "Vaishali Nagar", "C-Scheme", "Mansarovar", "Jagatpura"}},
		{ID: "11", Name: "Lucknow", Slug: "lucknow", State: "Uttar Pradesh", Tier: catalog.TierOne, Areas: []string{"Gomti Nagar", "Hazratganj", "Indira Nagar", "Aliganj", "Alambagh"}},
		{ID: "12", Name: "Chandigarh", Slug: "chandigarh", State: "Punjab", Tier: catalog.TierOne, Areas: []string{"Sector 17", "Sector 35", "Mohali", "Panchkula", "Zirakpur"}},
		{ID: "13", Name: "Ahmedabad", Slug: "ahmedabad", State: "Gujarat", Tier: catalog.TierOne, Areas: []string{"Satellite", "Vastrapur", "SG Highway", "Bodakdev", "Prahlad Nagar"}},
		{ID: "14", Name: "Surat", Slug: "surat", State: "Gujarat", Tier: catalog.TierOne, Areas: []string{"Adajan", "Vesu", "Citylight", "Pal", "Rander"}},
		{ID: "15", Name: "Indore", Slug: "indore", State: "Madhya Pradesh", Tier: catalog.TierOne, Areas: []string{"Vijay Nagar", "Palasia", "Rau", "Bypass Road", "Bhanwarkua"}},
		{ID: "16", Name: "Bhopal", Slug: "bhopal", State: "Madhya Pradesh", Tier: catalog.TierOne, Areas: []string{"MP Nagar", "Arera Colony", "Koh-e-Fiza", "Hoshangabad Road", "Ayodhya Bypass"}},
		{ID: "17", Name: "Patna", Slug: "patna", State: "Bihar", Tier: catalog.TierOne, Areas: []string{"Boring Road", "Kankarbagh", "Rajendra Nagar", "Danapur", "Patliputra"}},
		{ID: "18", Name: "Nagpur", Slug: "nagpur", State: "Maharashtra", Tier: catalog.TierOne, Areas: []string{"Dharampeth", "Sadar", "Sitabuldi", "MIHAN", "Wardha Road"}},
		{ID: "19", Name: "Visakhapatnam", Slug: "visakhapatnam", State: "Andhra Pradesh", Tier: catalog.TierOne, Areas: []string{"MVP Colony", "Madhurawada", "Gajuwaka", "Rushikonda", "Dwaraka Nagar"}},
		{ID: "20", Name: "Coimbatore", Slug: "coimbatore", State: "Tamil Nadu", Tier: catalog.TierOne, Areas: []string{"RS Puram", "Saibaba Colony", "Peelamedu", "Ganapathy", "Singanallur"}},
		{ID: "21", Name: "Kochi", Slug: "kochi", State: "Kerala", Tier: catalog.TierOne, Areas: []string{"Kakkanad", "Edappally", "Marine Drive", "Palarivattom", "Vytilla"}},
		{ID: "22", Name: "Thiruvananthapuram", Slug: "thiruvananthapuram", State: "Kerala", Tier: catalog.TierOne, Areas: []string{"Technopark", "Kazhakootam", "Kesavadasapuram", "Vazhuthacaud", "Pattom"}},
		{ID: "23", Name: "Vadodara", Slug: "vadodara", State: "Gujarat", Tier: catalog.TierTwo, Areas: []string{"Alkapuri", "Sayajigunj", "Fatehgunj", "Manjalpur", "Gotri"}},
		{ID: "24", Name: "Rajkot", Slug: "rajkot", State: "Gujarat", Tier: catalog.TierTwo, Areas: []string{"Kalawad Road", "University Road", "150 Feet Ring Road", "Raiya Road", "Mavdi"}},
		{ID: "25", Name: "Guwahati", Slug: "guwahati", State: "Assam", Tier: catalog.TierTwo, Areas: []string{"Paltan Bazaar", "Ganeshguri", "Beltola", "Khanapara", "Guwahati Club"}},
		{ID: "26", Name: "Bhubaneswar", Slug: "bhubaneswar", State: "Odisha", Tier: catalog.TierTwo, Areas: []string{"Saheed Nagar", "Patia", "Chandrasekharpur", "Khandagiri", "Jaydev Vihar"}},
		{ID: "27", Name: "Ranchi", Slug: "ranchi", State: "Jharkhand", Tier: catalog.TierTwo, Areas: []string{"Hinoo", "Kanke", "Harmu", "Doranda", "Lalpur"}},
		{ID: "28", Name: "Raipur", Slug: "raipur", State: "Chhattisgarh", Tier: catalog.TierTwo, Areas: []string{"Shankar Nagar", "Devendra Nagar", "Kota", "Pandri", "Mowa"}},
		{ID: "29", Name: "Dehradun", Slug: "dehradun", State: "Uttarakhand", Tier: catalog.TierTwo, Areas: []string{"Rajpur Road", "Sahastradhara Road", "Clement Town", "Patel Nagar", "ISBT"}},
		{ID: "30", Name: "Shimla", Slug: "shimla", State: "Himachal Pradesh", Tier: catalog.TierTwo, Areas: []string{"Mall Road", "Sanjauli", "Lakkar Bazaar", "Summer Hill", "Tutikandi"}},
		{ID: "31", Name: "Jammu", Slug: "jammu", State: "Jammu and Kashmir", Tier: catalog.TierTwo, Areas: []string{"Residency Road", "Trikuta Nagar", "Bahu Plaza", "Gandhi Nagar", "Janipur"}},
		{ID: "32", Name: "Srinagar", Slug: "srinagar", State: "Jammu and Kashmir", Tier: catalog.TierTwo, Areas: []string{"Lal Chowk", "Rajbagh", "Jawahar Nagar", "Sonwar", "Dalgate"}},
		{ID: "33", Name: "Agra", Slug: "agra", State: "Uttar Pradesh", Tier: catalog.TierTwo, Areas: []string{"Sanjay Place", "Kamla Nagar", "Dayalbagh", "Sikandra", "Tajganj"}},
		{ID: "34", Name: "Varanasi", Slug: "varanasi", State: "Uttar Pradesh", Tier: catalog.TierTwo, Areas: []string{"Sigra", "Cantt", "Lanka", "Bhelupur", "Godowlia"}},
		{ID: "35", Name: "Kanpur", Slug: "kanpur", State: "Uttar Pradesh", Tier: catalog.TierTwo, Areas: []string{"Civil Lines", "Swaroop Nagar", "Kalyanpur", "Kidwai Nagar", "Kakadeo"}},
		{ID: "36", Name: "Allahabad", Slug: "allahabad", State: "Uttar Pradesh", Tier: catalog.TierTwo, Areas: []string{"Civil Lines", "Georgetown", "Kareli", "Naini", "Ashok Nagar"}},
		{ID: "37", Name: "Amritsar", Slug: "amritsar", State: "Punjab", Tier: catalog.TierTwo, Areas: []string{"Lawrence Road", "Mall Road", "Ranjit Avenue", "Chheharta", "Majitha Road"}},
		{ID: "38", Name: "Ludhiana", Slug: "ludhiana", State: "Punjab", Tier: catalog.TierTwo, Areas: []string{"Ferozepur Road", "Model Town", "Sarabha Nagar", "Civil Lines", "Pakhowal Road"}},
		{ID: "39", Name: "Jalandhar", Slug: "jalandhar", State: "Punjab", Tier: catalog.TierTwo, Areas: []string{"Model Town", "Civil Lines", "Nakodar Road", "Kapurthala Road", "Urban Estate"}},
		{ID: "40", Name: "Mysore", Slug: "mysore", State: "Karnataka", Tier: catalog.TierTwo, Areas: []string{"Saraswathipuram", "VV Mohalla", "Kuvempunagar", "Hebbal", "Vijayanagar"}},
		{ID: "41", Name: "Mangalore", Slug: "mangalore", State: "Karnataka", Tier: catalog.TierTwo, Areas: []string{"Kadri", "Kankanady", "Bejai", "Mallikatte", "Balmatta"}},
		{ID: "42", Name: "Hubli", Slug: "hubli", State: "Karnataka", Tier: catalog.TierTwo, Areas: []string{"Vidyanagar", "Gokul Road", "Unkal", "Keshwapur", "Navanagar"}},
		{ID: "43", Name: "Vijayawada", Slug: "vijayawada", State: "Andhra Pradesh", Tier: catalog.TierTwo, Areas: []string{"MG Road", "Benz Circle", "Governorpet", "Labbipet", "Patamata"}},
		{ID: "44", Name: "Tirupati", Slug: "tirupati", State: "Andhra Pradesh", Tier: catalog.TierTwo, Areas: []string{"Tirumala", "Renigunta", "Air Bypass Road", "Balaji Colony", "TP Area"}},
		{ID: "45", Name: "Madurai", Slug: "madurai", State: "Tamil Nadu", Tier: catalog.TierTwo, Areas: []string{"Anna Nagar", "KK Nagar", "Gomathipuram", "SS Colony", "Vilangudi"}},
		{ID: "46", Name: "Trichy", Slug: "trichy", State: "Tamil Nadu", Tier: catalog.TierTwo, Areas: []string{"Thillai Nagar", "KK Nagar", "Srirangam", "Cantonment", "Puthur"}},
		{ID: "47", Name: "Salem", Slug: "salem", State: "Tamil Nadu", Tier: catalog.TierTwo, Areas: []string{"Junction", "Fairlands", "Hasthampatti", "Ammapet", "Shevapet"}},
		{ID: "48", Name: "Kozhikode", Slug: "kozhikode", State: "Kerala", Tier: catalog.TierTwo, Areas: []string{"Mavoor Road", "Arayidathupalam", "West Hill", "Medical College", "Kunnamangalam"}},
		{ID: "49", Name: "Thrissur", Slug: "thrissur", State: "Kerala", Tier: catalog.TierTwo, Areas: []string{"Round", "Shornur Road", "East Fort", "Puzhakkal", "Medical College"}},
		{ID: "50", Name: "Kollam", Slug: "kollam", State: "Kerala", Tier: catalog.TierTwo, Areas: []string{"Asramam", "Chinnakada", "Pallimukku", "Kottiyam", "Karunagappally"}},
	}
}

func Testimonials() []catalog.Testimonial {
	return []catalog.Testimonial{
		{
			ID:         "1",
			ClientName: "Rajesh Kumar",
			Company:    "TechStart Solutions",
			Rating:     5,
			Content:    "PyTech Digital transformed our online presence completely. Their website design and digital marketing services helped us increase leads by 300%. Highly professional team!",
			City:       "Delhi",
		},
		{
			ID:         "2",
			ClientName: "Priya Sharma",
			Company:    "StyleHub Fashion",
			Rating:     5,
			Content:    "Excellent branding services! They created a modern brand identity that perfectly captures our essence. The team was creative and delivered beyond expectations.",
			City:       "Mumbai",
		},
		{
			ID:         "3",
			ClientName: "Amit Patel",
			Company:    "FitLife Wellness",
			Rating:     5,
			Content:    "Our mobile app developed by PyTech Digital has been a game changer. User-friendly interface and seamless performance. Great job!",
			City:       "Bangalore",
		},
		{
			ID:         "4",
			ClientName: "Sneha Reddy",
			Company:    "EduTech Academy",
			Rating:     5,
			Content:    "Their enquiry generation services brought us quality leads consistently. ROI has been excellent and the team is always responsive.",
			City:       "Hyderabad",
		},
		{
			ID:         "5",
			ClientName: "Vikram Singh",
			Company:    "AutoParts India",
			Rating:     5,
			Content:    "Professional, reliable, and result-oriented. PyTech Digital helped us rank on first page of Google for our key business terms.",
			City:       "Pune",
		},
	}
}

func Portfolio() []catalog.PortfolioItem {
	return []catalog.PortfolioItem{
		{
			ID:          "1",
			Title:       "E-commerce Platform",
			Category:    "Website Design",
			Description: "Modern e-commerce website with seamless checkout experience",
			ImageURL:    "https://images.unsplash.com/photo-1661956602116-aa6865609028?w=800",
			City:        "Mumbai",
		},
		{
			ID:          "2",
			Title:       "Mobile Banking App",
			Category:    "App Development",
			Description: "Secure and user-friendly mobile banking application",
			ImageURL:    "https://images.unsplash.com/photo-1563986768609-322da13575f3?w=800",
			City:        "Bangalore",
		},
		{
			ID:          "3",
			Title:       "Brand Identity Design",
			Category:    "Branding Services",
			Description: "Complete brand identity for luxury hospitality brand",
			ImageURL:    "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800",
			City:        "Delhi",
		},
		{
			ID:          "4",
			Title:       "SEO Campaign Success",
			Category:    "Digital Marketing Services",
			Description: "300% organic traffic growth in 6 months",
			ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
			City:        "Hyderabad",
		},
	}
}
