package transport

// NowLiveQuery is the optional roster filter shared by every now_live route.
type NowLiveQuery struct {
	// Group: 1-32 letters or digits; unknown groups mean "no filter"
	Group string `form:"group" binding:"omitempty,group"`
}
