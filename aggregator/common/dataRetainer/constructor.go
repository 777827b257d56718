package dataretainer

// NewDataRetainer keeps every group when no retaining is configured.
func NewDataRetainer(retainings []Retaining) DataRetainer {
	if len(retainings) == 0 {
		return &AllRetainer{}
	}
	return &TopRetainer{
		retainings: retainings,
	}
}
