package storage

// SampleDocument is the data a brand-new address book starts with.
func SampleDocument() Document {
	return Document{
		Clients: []ClientRecord{
			{Name: "Alex Yeoh", Phone: "87438807", Email: "alexyeoh@example.com", Address: "Blk 30 Geylang Street 29, #06-40"},
			{Name: "Bernice Yu", Phone: "99272758", Email: "berniceyu@example.com", Address: "Blk 30 Lorong 3 Serangoon Gardens, #07-18"},
			{Name: "Charlotte Oliveiro", Phone: "93210283", Email: "charlotte@example.com"},
			{Name: "David Li", Phone: "91031282", Address: "Blk 436 Serangoon Gardens Street 26, #16-43"},
			{Name: "Irfan Ibrahim", Phone: "92492021", Email: "irfan@example.com"},
			{Name: "Roy Balakrishnan", Phone: "92624417", Email: "royb@example.com", Address: "Blk 45 Aljunied Street 85, #11-31"},
		},
		Properties: []PropertyRecord{
			{Name: "Skyline Residences", Address: "88 Marina Boulevard", Price: 2350, Size: 1180, Description: "High floor, sea view", Owner: "Alex Yeoh"},
			{Name: "Bishan Loft", Address: "Blk 123 Bishan Street 12", Price: 720, Size: 990, Owner: "Bernice Yu"},
			{Name: "Kent Ridge Villa", Address: "21 Kent Ridge Crescent", Price: 5400, Description: "Landed, renovated 2022", Owner: "David Li"},
		},
		Deals: []DealRecord{
			{Property: "Skyline Residences", Buyer: "Charlotte Oliveiro", Seller: "Alex Yeoh", Price: 2300, Status: "PENDING"},
			{Property: "Bishan Loft", Buyer: "Irfan Ibrahim", Seller: "Bernice Yu", Price: 700, Status: "OPEN"},
		},
		Events: []EventRecord{
			{Heading: "VIEWING", DateTime: "2025-03-14 10:00", Property: "Bishan Loft", Client: "Irfan Ibrahim", Note: "Bring floor plan"},
			{Heading: "MEETING", DateTime: "2025-03-18 15:30", Property: "Skyline Residences", Client: "Charlotte Oliveiro"},
			{Heading: "SIGNING", DateTime: "2025-04-02 11:00", Property: "Kent Ridge Villa", Client: "Roy Balakrishnan"},
		},
	}
}
