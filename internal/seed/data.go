package seed

// 内置初始数据。orders 的日期为 MM/DD/YYYY，Load 时转成 ISO 再入库。

type userRecord struct {
	FirstName string
	LastName  string
	Age       int
	Email     string
	Role      string
	Phone     string
}

type orderRecord struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Address     string
	Price       int
	CustomerID  uint
	ExecutorID  uint
}

type offerRecord struct {
	OrderID    uint
	ExecutorID uint
}

var users = []userRecord{
	{FirstName: "Madison", LastName: "Reyes", Age: 29, Email: "madison.reyes@example.com", Role: "customer", Phone: "+1 416 555 0134"},
	{FirstName: "Oliver", LastName: "Grant", Age: 41, Email: "oliver.grant@example.com", Role: "customer", Phone: "+1 647 555 0187"},
	{FirstName: "Priya", LastName: "Nair", Age: 33, Email: "priya.nair@example.com", Role: "executor", Phone: "+1 905 555 0112"},
	{FirstName: "Tomas", LastName: "Kovac", Age: 26, Email: "tomas.kovac@example.com", Role: "executor", Phone: "+1 416 555 0166"},
	{FirstName: "Elena", LastName: "Sokolova", Age: 37, Email: "elena.sokolova@example.com", Role: "executor", Phone: "+1 289 555 0143"},
}

var orders = []orderRecord{
	{
		Name:        "Assemble wardrobe",
		Description: "Flat-pack wardrobe, two doors, instructions included.",
		StartDate:   "03/12/2024",
		EndDate:     "03/14/2024",
		Address:     "12 Maple Ave, apt 4",
		Price:       90,
		CustomerID:  1,
		ExecutorID:  3,
	},
	{
		Name:        "Paint the hallway",
		Description: "Walls and ceiling, paint provided, roughly 18 sq m.",
		StartDate:   "04/01/2024",
		EndDate:     "04/05/2024",
		Address:     "78 Birch Street",
		Price:       260,
		CustomerID:  2,
		ExecutorID:  4,
	},
	{
		Name:        "Fix leaking tap",
		Description: "Kitchen mixer drips, cartridge likely needs replacing.",
		StartDate:   "04/10/2024",
		EndDate:     "04/10/2024",
		Address:     "3 Willow Court",
		Price:       45,
		CustomerID:  1,
		ExecutorID:  5,
	},
	{
		Name:        "Move a piano",
		Description: "Upright piano, ground floor to ground floor across town.",
		StartDate:   "05/20/2024",
		EndDate:     "05/21/2024",
		Address:     "201 King Road",
		Price:       300,
		CustomerID:  2,
		ExecutorID:  3,
	},
}

var offers = []offerRecord{
	{OrderID: 1, ExecutorID: 3},
	{OrderID: 1, ExecutorID: 4},
	{OrderID: 2, ExecutorID: 4},
	{OrderID: 3, ExecutorID: 5},
	{OrderID: 4, ExecutorID: 3},
	{OrderID: 4, ExecutorID: 5},
}
