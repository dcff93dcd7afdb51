package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/goldenpalm/resort_backend/configs"
	"github.com/goldenpalm/resort_backend/models"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.EventSpace{},
		&models.Booking{},
		&models.EventBooking{},
		&models.Payment{},
		&models.RefundRequest{},
		&models.Notification{},
		&models.Photo{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" {
		adminEmail = "admin@goldenpalmresort.com"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	adminUser := models.User{
		Username:  "admin",
		Email:     adminEmail,
		Password:  string(hashedPassword),
		FirstName: "Chaminda",
		LastName:  "Perera",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}
	log.Println("✅ Admin user seeded successfully")
}

// SeedStaff creates one sample account per staff role plus a demo guest with
// predictable dev credentials. Skipped entirely once any of them exist.
func SeedStaff() {
	var count int64
	if err := DB.Model(&models.User{}).Where("username IN ?", []string{"guest", "manager", "frontdesk", "payment"}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for staff users: %v", err)
	}
	if count > 0 {
		return
	}

	seed := []struct {
		username, email, password string
		firstName, lastName       string
		phone, role               string
	}{
		{"guest", "guest@example.com", "guest123", "John", "Doe", "+94 77 123 4567", models.RoleGuest},
		{"manager", "manager@goldenpalmresort.com", "manager123", "Nadeesha", "Jayawardena", "+94 11 234 5679", models.RoleManager},
		{"frontdesk", "frontdesk@goldenpalmresort.com", "frontdesk123", "Tharushi", "Senanayake", "+94 11 234 5680", models.RoleFrontDesk},
		{"payment", "payment@goldenpalmresort.com", "payment123", "Dilan", "Abeykoon", "+94 11 234 5681", models.RolePaymentOfficer},
	}

	for _, u := range seed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("🔥 Failed to hash password for %s: %v", u.username, err)
		}
		phone := u.phone
		user := models.User{
			Username:  u.username,
			Email:     u.email,
			Password:  string(hashed),
			FirstName: u.firstName,
			LastName:  u.lastName,
			Phone:     &phone,
			Role:      u.role,
			IsActive:  true,
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Fatalf("🔥 Failed to seed user %s: %v", u.username, err)
		}
	}
	log.Println("✅ Sample users seeded successfully")
}

func SeedRooms() {
	var count int64
	if err := DB.Model(&models.Room{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to count rooms: %v", err)
	}
	if count > 0 {
		return
	}

	tiers := []struct {
		from, to    int
		roomType    string
		floor       int
		price       int64
		capacity    int
		description string
		amenities   string
	}{
		{101, 110, "Standard Room", 1, 15000, 2,
			"Comfortable and cozy rooms perfect for business or leisure travelers.",
			"Queen-size bed, Private bathroom, Free Wi-Fi, Daily housekeeping"},
		{201, 205, "Deluxe Room", 2, 25000, 3,
			"Spacious rooms with premium amenities and beautiful views.",
			"King-size bed, Ocean view, Balcony, Mini bar"},
		{301, 303, "Executive Suite", 3, 45000, 4,
			"Ultimate luxury with separate living area and premium services.",
			"Separate living room, Butler service, Private terrace, Premium amenities"},
	}

	for _, tier := range tiers {
		for n := tier.from; n <= tier.to; n++ {
			room := models.Room{
				RoomNumber:  fmt.Sprintf("%d", n),
				RoomType:    tier.roomType,
				FloorNumber: tier.floor,
				BasePrice:   decimal.NewFromInt(tier.price),
				Capacity:    tier.capacity,
				Description: tier.description,
				Amenities:   tier.amenities,
				Status:      models.RoomStatusAvailable,
				IsActive:    true,
			}
			if err := DB.Create(&room).Error; err != nil {
				log.Fatalf("🔥 Failed to seed room %d: %v", n, err)
			}
		}
	}
	log.Println("✅ Rooms seeded successfully")
}

func SeedEventSpaces() {
	var count int64
	if err := DB.Model(&models.EventSpace{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to count event spaces: %v", err)
	}
	if count > 0 {
		return
	}

	spaces := []models.EventSpace{
		{
			Name:        "Grand Ballroom",
			Description: "Our largest and most elegant venue, perfect for grand weddings, corporate galas, and large-scale events. Features crystal chandeliers, marble floors, and panoramic windows.",
			Capacity:    500,
			BasePrice:   decimal.NewFromInt(150000),
			SetupTypes:  "Wedding,Corporate Event,Banquet,Conference",
			Amenities:   "Crystal chandeliers, Marble floors, Panoramic windows, Stage, Dance floor, Bridal suite, VIP lounge",
			FloorNumber: 1, Dimensions: "30m x 20m",
			CateringAvailable: true, AudioVisualEquipment: true, ParkingAvailable: true,
		},
		{
			Name:        "Royal Garden",
			Description: "A stunning outdoor venue surrounded by tropical gardens, perfect for romantic weddings and outdoor celebrations. Features a gazebo, fountain, and lush landscaping.",
			Capacity:    200,
			BasePrice:   decimal.NewFromInt(80000),
			SetupTypes:  "Wedding,Outdoor Event,Garden Party",
			Amenities:   "Gazebo, Fountain, Tropical gardens, Outdoor lighting, Bridal suite, Restroom facilities",
			FloorNumber: 0, Dimensions: "25m x 15m",
			CateringAvailable: true, AudioVisualEquipment: false, ParkingAvailable: true,
		},
		{
			Name:        "Executive Conference Center",
			Description: "A state-of-the-art conference facility designed for business meetings, seminars, and corporate events. Features modern technology and professional setup.",
			Capacity:    150,
			BasePrice:   decimal.NewFromInt(60000),
			SetupTypes:  "Conference,Meeting,Seminar,Training",
			Amenities:   "Projector, Sound system, Microphones, Whiteboards, Coffee service, Business center",
			FloorNumber: 2, Dimensions: "20m x 12m",
			CateringAvailable: true, AudioVisualEquipment: true, ParkingAvailable: true,
		},
		{
			Name:        "Sunset Terrace",
			Description: "An intimate rooftop venue with breathtaking ocean views, perfect for small weddings, cocktail parties, and intimate gatherings.",
			Capacity:    80,
			BasePrice:   decimal.NewFromInt(45000),
			SetupTypes:  "Wedding,Cocktail Party,Intimate Event",
			Amenities:   "Ocean view, Rooftop setting, Bar area, Lounge seating, Sunset views",
			FloorNumber: 5, Dimensions: "15m x 10m",
			CateringAvailable: true, AudioVisualEquipment: false, ParkingAvailable: true,
		},
		{
			Name:        "Marina Hall",
			Description: "A versatile venue overlooking the marina, suitable for medium-sized events, product launches, and social gatherings.",
			Capacity:    120,
			BasePrice:   decimal.NewFromInt(70000),
			SetupTypes:  "Corporate Event,Product Launch,Social Event,Wedding",
			Amenities:   "Marina view, Flexible layout, Stage, Dance floor, Bar area",
			FloorNumber: 1, Dimensions: "18m x 14m",
			CateringAvailable: true, AudioVisualEquipment: true, ParkingAvailable: true,
		},
	}

	for i := range spaces {
		spaces[i].Status = models.EventSpaceStatusAvailable
		spaces[i].IsActive = true
		if err := DB.Create(&spaces[i]).Error; err != nil {
			log.Fatalf("🔥 Failed to seed event space %s: %v", spaces[i].Name, err)
		}
	}
	log.Println("✅ Event spaces seeded successfully")
}
