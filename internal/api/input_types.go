package api

type credentialsInput struct {
	Username   string `json:"username" form:"username"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type profileInput struct {
	Age           int     `json:"age" form:"age"`
	HeightInches  float64 `json:"height_inches" form:"height_inches"`
	WeightLb      float64 `json:"weight_lb" form:"weight_lb"`
	GoalWeightLb  float64 `json:"goal_weight_lb" form:"goal_weight_lb"`
	Sex           string  `json:"sex" form:"sex"`
	ActivityLevel string  `json:"activity_level" form:"activity_level"`
}

type entryInput struct {
	Meal     string `json:"meal" form:"meal"`
	Calories string `json:"calories" form:"calories"`
	Date     string `json:"date" form:"date"`
}
