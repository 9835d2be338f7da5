package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

// parquetBatchRows bounds the size of each Arrow record handed to the writer.
const parquetBatchRows = 8192

// ParquetSchema describes the dataset as Arrow columns. Only the
// missing-eligible columns are nullable.
func ParquetSchema() *arrow.Schema {
	fields := []arrow.Field{
		{Name: domain.ColumnDate, Type: arrow.FixedWidthTypes.Date32},
		{Name: domain.ColumnUserID, Type: arrow.PrimitiveTypes.Int32},
		{Name: domain.ColumnGender, Type: arrow.BinaryTypes.String},
		{Name: domain.ColumnAge, Type: arrow.PrimitiveTypes.Int32},
		{Name: domain.ColumnHeightCM, Type: arrow.PrimitiveTypes.Float64},
		{Name: domain.ColumnWeightKG, Type: arrow.PrimitiveTypes.Float64},
		{Name: domain.ColumnSteps, Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: domain.ColumnActiveMinutes, Type: arrow.PrimitiveTypes.Float64},
		{Name: domain.ColumnCaloriesBurned, Type: arrow.PrimitiveTypes.Float64},
		{Name: domain.ColumnRestingHeartRate, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: domain.ColumnSleepHours, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: domain.ColumnStressLevel, Type: arrow.BinaryTypes.String},
		{Name: domain.ColumnDietQuality, Type: arrow.BinaryTypes.String},
		{Name: domain.ColumnWaterIntakeLiters, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: domain.ColumnFitnessScore, Type: arrow.PrimitiveTypes.Float64},
		{Name: domain.ColumnWeightChangeKG, Type: arrow.PrimitiveTypes.Float64},
		{Name: domain.ColumnGoalAchieved, Type: arrow.PrimitiveTypes.Int8},
	}
	return arrow.NewSchema(fields, nil)
}

// WriteParquet writes the dataset as a single Parquet file.
func WriteParquet(w io.Writer, ds *domain.Dataset) error {
	schema := ParquetSchema()
	mem := memory.NewGoAllocator()

	writer, err := pqarrow.NewFileWriter(schema, w, nil, pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(mem)))
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for start := 0; start < len(ds.Records); start += parquetBatchRows {
		end := start + parquetBatchRows
		if end > len(ds.Records) {
			end = len(ds.Records)
		}
		record := buildRecord(mem, schema, ds.Records[start:end])
		err := writer.Write(record)
		record.Release()
		if err != nil {
			writer.Close()
			return fmt.Errorf("failed to write parquet batch: %w", err)
		}
	}

	return writer.Close()
}

func buildRecord(mem memory.Allocator, schema *arrow.Schema, rows []domain.DailyRecord) arrow.Record {
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for i := range rows {
		r := &rows[i]
		b.Field(0).(*array.Date32Builder).Append(arrow.Date32FromTime(r.Date))
		b.Field(1).(*array.Int32Builder).Append(int32(r.UserID))
		b.Field(2).(*array.StringBuilder).Append(string(r.Gender))
		b.Field(3).(*array.Int32Builder).Append(int32(r.Age))
		b.Field(4).(*array.Float64Builder).Append(r.HeightCM)
		b.Field(5).(*array.Float64Builder).Append(r.WeightKG)
		if r.Steps != nil {
			b.Field(6).(*array.Int64Builder).Append(int64(*r.Steps))
		} else {
			b.Field(6).AppendNull()
		}
		b.Field(7).(*array.Float64Builder).Append(r.ActiveMinutes)
		b.Field(8).(*array.Float64Builder).Append(r.CaloriesBurned)
		appendOptional(b.Field(9).(*array.Float64Builder), r.RestingHeartRate)
		appendOptional(b.Field(10).(*array.Float64Builder), r.SleepHours)
		b.Field(11).(*array.StringBuilder).Append(string(r.StressLevel))
		b.Field(12).(*array.StringBuilder).Append(string(r.DietQuality))
		appendOptional(b.Field(13).(*array.Float64Builder), r.WaterIntakeLiters)
		b.Field(14).(*array.Float64Builder).Append(r.FitnessScore)
		b.Field(15).(*array.Float64Builder).Append(r.WeightChangeKG)
		var goal int8
		if r.GoalAchieved {
			goal = 1
		}
		b.Field(16).(*array.Int8Builder).Append(goal)
	}

	return b.NewRecord()
}

func appendOptional(b *array.Float64Builder, v *float64) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(*v)
}
