package lab

// Default is the lab as it ships: six stations on the U desk, five hotspots,
// five info panels and the guide's tour.
func Default() *Layout {
	return &Layout{
		Stations: []Station{
			// left arm, facing right
			{ID: 1, Position: [3]float64{-3.5, 0.82, 1}, ChairOffset: [3]float64{-0.8, 0, 0}, LookDir: [3]float64{1, 0, 0}},
			{ID: 2, Position: [3]float64{-3.5, 0.82, -1}, ChairOffset: [3]float64{-0.8, 0, 0}, LookDir: [3]float64{1, 0, 0}},
			// right arm, facing left
			{ID: 3, Position: [3]float64{3.5, 0.82, 1}, ChairOffset: [3]float64{0.8, 0, 0}, LookDir: [3]float64{-1, 0, 0}},
			{ID: 4, Position: [3]float64{3.5, 0.82, -1}, ChairOffset: [3]float64{0.8, 0, 0}, LookDir: [3]float64{-1, 0, 0}},
			// bottom, facing the teacher
			{ID: 5, Position: [3]float64{-1.5, 0.82, 2}, ChairOffset: [3]float64{0, 0, 0.8}, LookDir: [3]float64{0, 0, -1}},
			{ID: 6, Position: [3]float64{1.5, 0.82, 2}, ChairOffset: [3]float64{0, 0, 0.8}, LookDir: [3]float64{0, 0, -1}},
		},
		TeleportPoints: []TeleportPoint{
			{ID: "entrance", Name: "Pintu Masuk", X: -4, Z: 5, Color: "#22c55e"},
			{ID: "teacher", Name: "Meja Dosen", X: 0, Z: -4, Color: "#3b82f6"},
			{ID: "switches", Name: "Rak Switch", X: -2.5, Z: -1, Color: "#f59e0b"},
			{ID: "cabinet", Name: "Rak Server", X: 5, Z: 5, Color: "#8b5cf6"},
			{ID: "student1", Name: "Meja Mahasiswa", X: -2, Z: 1, Color: "#ec4899"},
		},
		Info: map[string]Info{
			"computer": {
				Title:       "Komputer Mahasiswa",
				Icon:        "🖥️",
				Description: "Komputer praktikum yang digunakan mahasiswa untuk melakukan konfigurasi jaringan dan simulasi network.",
				Details: []string{
					"Processor Intel Core i5 / AMD Ryzen 5",
					"RAM 8GB DDR4",
					"Storage SSD 256GB",
					"OS: Windows 10 / Linux Ubuntu",
					"Software: Cisco Packet Tracer, Wireshark, GNS3",
				},
			},
			"switch": {
				Title:       "Switch Jaringan",
				Icon:        "🔌",
				Description: "Switch managed layer 2/3 untuk praktikum VLAN, trunking, dan routing antar VLAN.",
				Details: []string{
					"Cisco Catalyst 2960 Series",
					"24 Port Gigabit Ethernet",
					"Managed Switch dengan CLI",
					"Support VLAN, STP, Port Security",
					"Koneksi antar meja mahasiswa",
				},
			},
			"cabinet": {
				Title:       "Rak Server Jaringan",
				Icon:        "🗄️",
				Description: "Rak server 42U berisi switch jaringan managed untuk infrastruktur lab dan praktikum switching.",
				Details: []string{
					"7x Cisco Catalyst 2960-X Series",
					"24 Port Gigabit Ethernet per switch",
					"Managed Layer 2/3 Switch",
					"Support VLAN, STP, RSTP, MSTP",
					"Port Security & Access Control",
					"SNMP Management & Monitoring",
					"Redundant Power Supply",
				},
			},
			"projector": {
				Title:       "Proyektor & Layar",
				Icon:        "📽️",
				Description: "Sistem proyeksi untuk menampilkan materi praktikum, topologi jaringan, dan demonstrasi konfigurasi.",
				Details: []string{
					"Proyektor Epson EB-X51 3800 Lumens",
					"Resolusi XGA 1024x768",
					"Screen 120 inch Manual",
					"Koneksi HDMI & VGA",
					"Menampilkan topologi & slide materi",
				},
			},
			"desk": {
				Title:       "Meja Praktikum",
				Icon:        "🪑",
				Description: "Meja praktikum berbentuk huruf U yang dirancang untuk kolaborasi dan akses mudah ke perangkat jaringan.",
				Details: []string{
					"Desain U-Shape untuk kolaborasi",
					"Material kayu laminasi tahan lama",
					"Kabel management tersembunyi",
					"Kapasitas 5 workstation",
					"Menghadap ke meja dosen & proyektor",
				},
			},
		},
		Guide: []string{
			"Selamat datang di Lab Jaringan! Saya Dosen AI yang akan memandu Anda. Klik untuk tips berikutnya!",
			"Gunakan WASD untuk berjalan dan mouse untuk melihat sekeliling. Klik objek untuk melihat informasinya.",
			"Coba klik kursi untuk duduk dan merasakan pengalaman mahasiswa di lab ini.",
			"Perhatikan kabel jaringan berwarna-warni yang menghubungkan komputer ke switch!",
			"Switch jaringan di tengah ruangan menghubungkan semua komputer. Klik untuk detail!",
			"Lemari Mikrotik berisi router untuk praktikum routing dan firewall.",
			"Proyektor menampilkan topologi jaringan. Anda bisa klik untuk melihat lebih detail.",
			"Gunakan minimap di kanan bawah untuk teleport ke lokasi yang berbeda!",
			"Selamat mengeksplorasi Lab Jaringan UHW Perbanas Surabaya! 🎓",
		},
	}
}

