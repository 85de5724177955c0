package team

type CreateTeamRequest struct {
	Name    string  `json:"name" binding:"required"`
	Members []int64 `json:"members"`
}

type UpdateTeamRequest struct {
	Name    *string  `json:"name"`
	Members *[]int64 `json:"members"`
}
