package model

// Fixed integer enums from the POS schema. Unknown values map to "Unknown"
// rather than erroring so a new enum value never breaks a report.

var roleNames = map[int]string{
	0: "Admin",
	1: "Manager",
	2: "Cashier",
	3: "Stock Keeper",
}

var movementTypeNames = map[int]string{
	0: "Purchase",
	1: "Purchase Return",
	2: "Transfer",
	3: "Sale",
	4: "Sale Return",
	5: "BRN Return",
}

func RoleName(id int) string {
	if name, ok := roleNames[id]; ok {
		return name
	}
	return "Unknown"
}

func MovementTypeName(id int) string {
	if name, ok := movementTypeNames[id]; ok {
		return name
	}
	return "Unknown"
}

// MovementTypes returns the legend listed in movement responses, indexed by
// the stored movement_type value.
func MovementTypes() []string {
	out := make([]string, len(movementTypeNames))
	for k, v := range movementTypeNames {
		out[k] = v
	}
	return out
}
