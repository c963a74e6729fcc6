package domain

// CategoryLabel 分类标注用的标签定义
type CategoryLabel struct {
	ID   int64
	Text string
}

// Category 某个标注员在某条样本上打的一个分类标签
type Category struct {
	ID        int64
	ExampleID int64
	UID       int64
	Label     CategoryLabel
}
