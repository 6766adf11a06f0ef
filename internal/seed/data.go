package seed

import (
	"fmt"
	"time"

	"shop/internal/domain/model"

	"github.com/google/uuid"
)

// UserRef は Data.Users の添字。採番後のidに読み替える
type UserRef int

type UserAllergy struct {
	User        UserRef
	AllergyName string
	Notes       string
}

type Interest struct {
	User        UserRef
	Name        string
	Category    string
	Description string
}

type Dislike struct {
	User        UserRef
	Name        string
	Category    string
	Severity    string
	Description string
}

type Line struct {
	ProductID uuid.UUID
	Quantity  int64
	Status    model.PurchaseStatus
}

// Order の合計は明細から計算する
type Order struct {
	User       UserRef
	CheckedOut bool
	Lines      []Line
}

type Data struct {
	Users         []model.User
	Allergies     []model.Allergy
	UserAllergies []UserAllergy
	Interests     []Interest
	Dislikes      []Dislike
	Products      []model.Product
	Orders        []Order
}

func ProductID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("550e8400-e29b-41d4-a716-%012d", 446655440000+n))
}

func ptr(s string) *string { return &s }

// Example は開発用のサンプルデータ
func Example() Data {
	user := func(last, first string, born model.Date, email, phone string, cond model.Condition,
		street1 string, street2 *string, city, state, zip string) model.User {
		return model.User{
			LastName: last, FirstName: first, BirthDate: born, Email: email,
			PhoneNumber: ptr(phone), Condition: cond,
			Street1: street1, Street2: street2, City: city, StateProvince: state, Zip: zip, Country: "USA",
		}
	}
	allergy := func(name, desc string) model.Allergy {
		return model.Allergy{Name: name, Description: ptr(desc)}
	}
	product := func(n int, name, desc, price string, qty int64, img *string, cat, sub, brand string, active bool) model.Product {
		return model.Product{
			ID: ProductID(n), Name: name, Description: desc, Price: model.MustMoney(price), Quantity: qty,
			ImageURL: img, Category: cat, SubCategory: sub, Brand: brand, IsActive: active,
		}
	}

	return Data{
		Users: []model.User{
			user("Smith", "John", model.NewDate(1990, time.May, 15), "john.smith@email.com", "+1234567890",
				model.ConditionActive, "123 Main Street", ptr("Apt 4B"), "New York", "NY", "10001"),
			user("Johnson", "Sarah", model.NewDate(1985, time.August, 22), "sarah.johnson@email.com", "+1987654321",
				model.ConditionActive, "456 Oak Avenue", nil, "Los Angeles", "CA", "90210"),
			user("Williams", "Michael", model.NewDate(1992, time.March, 10), "michael.williams@email.com", "+1555123456",
				model.ConditionActive, "789 Pine Road", ptr("Unit 12"), "Chicago", "IL", "60601"),
			user("Brown", "Emily", model.NewDate(1988, time.November, 30), "emily.brown@email.com", "+1444333222",
				model.ConditionDeactivated, "321 Elm Street", nil, "Houston", "TX", "77001"),
			user("Davis", "David", model.NewDate(1995, time.July, 4), "david.davis@email.com", "+1666777888",
				model.ConditionActive, "654 Maple Drive", ptr("Suite 200"), "Phoenix", "AZ", "85001"),
		},
		Allergies: []model.Allergy{
			allergy("Milk", "Allergic reaction to milk and dairy products"),
			allergy("Eggs", "Allergic reaction to eggs and egg products"),
			allergy("Fish", "Allergic reaction to fish and fish products"),
			allergy("Shellfish", "Allergic reaction to shellfish and crustaceans"),
			allergy("Tree Nuts", "Allergic reaction to tree nuts (almonds, walnuts, etc.)"),
			allergy("Peanuts", "Allergic reaction to peanuts and peanut products"),
			allergy("Wheat", "Allergic reaction to wheat and wheat products"),
			allergy("Soybeans", "Allergic reaction to soybeans and soy products"),
			allergy("Sesame", "Allergic reaction to sesame seeds and sesame products"),
			allergy("Nightshade", "Allergic reaction to nightshade vegetables (tomatoes, potatoes, peppers, eggplant)"),
		},
		UserAllergies: []UserAllergy{
			{0, "Milk", "Lactose intolerance and mild dairy allergy"},
			{1, "Eggs", "Allergic reaction to eggs - must avoid completely"},
			{2, "Shellfish", "Minor skin reaction to shellfish"},
			{3, "Wheat", "Celiac disease - must avoid all wheat products"},
			{4, "Peanuts", "Anaphylactic reaction - must avoid completely"},
			{0, "Soybeans", "Minor soy allergy"},
			{2, "Tree Nuts", "Severe reaction to tree nuts"},
		},
		Interests: []Interest{
			{0, "Technology", "Hobbies", "Passionate about latest tech gadgets and innovations"},
			{0, "Running", "Sports", "Marathon training and fitness enthusiast"},
			{1, "Cooking", "Lifestyle", "Enjoys experimenting with new recipes"},
			{1, "Travel", "Lifestyle", "Loves exploring new destinations"},
			{2, "Music", "Entertainment", "Plays guitar and enjoys various genres"},
			{3, "Reading", "Entertainment", "Avid reader of science fiction and fantasy"},
			{4, "Photography", "Arts", "Landscape and street photography enthusiast"},
		},
		Dislikes: []Dislike{
			{0, "Spicy Food", "Food", "Severe", "Cannot tolerate hot spices"},
			{1, "Cold Weather", "Weather", "Moderate", "Prefers warm climates"},
			{2, "Crowded Places", "Environment", "Mild", "Avoids large crowds and busy areas"},
			{3, "Early Mornings", "Lifestyle", "Moderate", "Not a morning person"},
			{4, "Public Speaking", "Social", "Severe", "Gets nervous in front of large groups"},
		},
		Products: []model.Product{
			product(1, "Wireless Bluetooth Headphones", "High-quality wireless headphones with noise cancellation",
				"129.99", 50, ptr("images/hightech_ears.webp"), "Electronics", "Audio", "TechSound", true),
			product(2, "Smartphone Case", "Durable protective case for iPhone 15",
				"24.99", 100, ptr("images/iphone_case.jpg"), "Accessories", "Phone Cases", "ProtectPro", true),
			product(3, "Coffee Maker", "Programmable coffee maker with thermal carafe",
				"89.99", 25, ptr("images/coffee_maker.jpg"), "Home & Kitchen", "Appliances", "BrewMaster", true),
			product(4, "Running Shoes", "Lightweight running shoes for daily training",
				"79.99", 75, ptr("images/running_shoes.jpg"), "Sports", "Footwear", "RunFast", true),
			product(5, "Laptop Stand", "Adjustable aluminum laptop stand for ergonomic setup",
				"39.99", 60, ptr("images/laptop_stand.jpeg"), "Electronics", "Computer Accessories", "ErgoTech", true),
			product(6, "Discontinued Product", "This product is no longer available",
				"19.99", 0, nil, "Test", "Discontinued", "TestBrand", false),
		},
		Orders: []Order{
			{User: 0, CheckedOut: true, Lines: []Line{
				{ProductID(1), 2, model.PurchaseStatusCompleted},
				{ProductID(2), 1, model.PurchaseStatusCompleted},
			}},
			{User: 1, CheckedOut: true, Lines: []Line{
				{ProductID(2), 1, model.PurchaseStatusCompleted},
			}},
			{User: 2, CheckedOut: false, Lines: []Line{
				{ProductID(3), 1, model.PurchaseStatusInCart},
			}},
			{User: 3, CheckedOut: true, Lines: []Line{
				{ProductID(1), 1, model.PurchaseStatusCompleted},
				{ProductID(5), 1, model.PurchaseStatusCompleted},
			}},
			{User: 4, CheckedOut: false, Lines: []Line{
				{ProductID(5), 1, model.PurchaseStatusCancelled},
			}},
		},
	}
}
